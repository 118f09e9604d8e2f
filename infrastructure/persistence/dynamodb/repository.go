// Package dynamodb persists the flow document as a single DynamoDB item.
package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/NicollasRezende/flow-management-app/domain/menu"
	apperrors "github.com/NicollasRezende/flow-management-app/pkg/errors"
	"github.com/NicollasRezende/flow-management-app/pkg/observability"
)

// Repository stores one flow document per document id in a single-table
// layout: PK "FLOW#<id>", SK "DOCUMENT".
type Repository struct {
	client     *dynamodb.Client
	table      string
	documentID string
	tracer     *observability.Tracer
}

// NewRepository creates a repository bound to a table and document id.
func NewRepository(client *dynamodb.Client, table, documentID string, tracer *observability.Tracer) *Repository {
	return &Repository{
		client:     client,
		table:      table,
		documentID: documentID,
		tracer:     tracer,
	}
}

type flowRecord struct {
	PK        string    `dynamodbav:"PK"`
	SK        string    `dynamodbav:"SK"`
	Document  menu.Tree `dynamodbav:"Document"`
	UpdatedAt string    `dynamodbav:"UpdatedAt"`
}

func (r *Repository) key() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: "FLOW#" + r.documentID},
		"SK": &types.AttributeValueMemberS{Value: "DOCUMENT"},
	}
}

// Load fetches the document item. A missing item maps to NOT_FOUND.
func (r *Repository) Load(ctx context.Context) (menu.Tree, error) {
	var tree menu.Tree
	err := r.tracer.Trace(ctx, "dynamodb.Load", func(ctx context.Context) error {
		out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
			TableName: aws.String(r.table),
			Key:       r.key(),
		})
		if err != nil {
			return apperrors.NewDatabaseError("get_item", err)
		}
		if out.Item == nil {
			return apperrors.NewNotFoundError("flow document")
		}

		var record flowRecord
		if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
			return apperrors.NewDatabaseError("unmarshal", err)
		}
		tree = record.Document
		return nil
	})
	if err != nil {
		return menu.Tree{}, err
	}
	return tree, nil
}

// Save writes the document item.
func (r *Repository) Save(ctx context.Context, tree menu.Tree) error {
	return r.tracer.Trace(ctx, "dynamodb.Save", func(ctx context.Context) error {
		record := flowRecord{
			PK:        "FLOW#" + r.documentID,
			SK:        "DOCUMENT",
			Document:  tree,
			UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		}
		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			return apperrors.NewDatabaseError("marshal", err)
		}

		_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.table),
			Item:      item,
		})
		if err != nil {
			return apperrors.NewDatabaseError("put_item", err)
		}
		return nil
	})
}
