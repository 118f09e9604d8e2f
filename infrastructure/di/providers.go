package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"

	"github.com/NicollasRezende/flow-management-app/application/commands"
	"github.com/NicollasRezende/flow-management-app/application/commands/bus"
	commandhandlers "github.com/NicollasRezende/flow-management-app/application/commands/handlers"
	"github.com/NicollasRezende/flow-management-app/application/ports"
	"github.com/NicollasRezende/flow-management-app/application/queries"
	querybus "github.com/NicollasRezende/flow-management-app/application/queries/bus"
	queryhandlers "github.com/NicollasRezende/flow-management-app/application/queries/handlers"
	"github.com/NicollasRezende/flow-management-app/application/services"
	"github.com/NicollasRezende/flow-management-app/infrastructure/config"
	"github.com/NicollasRezende/flow-management-app/infrastructure/messaging"
	"github.com/NicollasRezende/flow-management-app/infrastructure/messaging/eventbridge"
	"github.com/NicollasRezende/flow-management-app/infrastructure/persistence/dynamodb"
	"github.com/NicollasRezende/flow-management-app/infrastructure/persistence/fallback"
	"github.com/NicollasRezende/flow-management-app/infrastructure/persistence/localfile"
	"github.com/NicollasRezende/flow-management-app/infrastructure/persistence/memory"
	"github.com/NicollasRezende/flow-management-app/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideTracer creates a tracer, or nil when tracing is disabled. The
// observability helpers are nil-safe.
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	if !cfg.EnableTracing {
		return nil
	}
	return observability.NewTracer("flow-management-app")
}

// ProvideMetrics creates metrics instance
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config) *observability.Metrics {
	namespace := fmt.Sprintf("FlowManagement/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil)
	}
	return observability.NewMetrics(namespace, client)
}

// ProvideFlowRepository selects the storage backend from configuration. The
// DynamoDB driver is wrapped in a local-file fallback so editors keep their
// work through primary outages.
func ProvideFlowRepository(
	client *awsdynamodb.Client,
	cfg *config.Config,
	tracer *observability.Tracer,
	logger *zap.Logger,
) ports.FlowRepository {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		return memory.NewRepository()
	case config.StorageDriverDynamoDB:
		primary := dynamodb.NewRepository(client, cfg.FlowTable, cfg.FlowDocumentID, tracer)
		cache := localfile.NewRepository(cfg.CachePath)
		return fallback.NewRepository(primary, cache, logger)
	default:
		return localfile.NewRepository(cfg.CachePath)
	}
}

// ProvideEventPublisher creates an event publisher. Outside production the
// publisher is a no-op so local editing needs no AWS account.
func ProvideEventPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.EventPublisher {
	if !cfg.IsProduction() || cfg.EventBusName == "" {
		return messaging.NewNoopPublisher()
	}
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvideFlowService creates the flow service
func ProvideFlowService(
	repo ports.FlowRepository,
	publisher ports.EventPublisher,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *services.FlowService {
	return services.NewFlowService(repo, publisher, metrics, logger)
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(flows *services.FlowService, logger *zap.Logger) *bus.CommandBus {
	commandBus := bus.NewCommandBus()

	addHandler := commandhandlers.NewAddMenuHandler(flows, logger)
	commandBus.Register(commands.AddMenuCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			addCmd, ok := cmd.(commands.AddMenuCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := addHandler.Handle(ctx, addCmd)
			return err
		},
	})

	updateHandler := commandhandlers.NewUpdateMenuHandler(flows, logger)
	commandBus.Register(commands.UpdateMenuCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			updateCmd, ok := cmd.(commands.UpdateMenuCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := updateHandler.Handle(ctx, updateCmd)
			return err
		},
	})

	connectHandler := commandhandlers.NewConnectMenusHandler(flows, logger)
	commandBus.Register(commands.ConnectMenusCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			connectCmd, ok := cmd.(commands.ConnectMenusCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := connectHandler.Handle(ctx, connectCmd)
			return err
		},
	})

	moveHandler := commandhandlers.NewMoveMenuHandler(flows, logger)
	commandBus.Register(commands.MoveMenuCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			moveCmd, ok := cmd.(commands.MoveMenuCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return moveHandler.Handle(ctx, moveCmd)
		},
	})

	deleteHandler := commandhandlers.NewDeleteMenuHandler(flows, logger)
	commandBus.Register(commands.DeleteMenuCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteMenuCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteHandler.Handle(ctx, deleteCmd)
		},
	})

	saveHandler := commandhandlers.NewSaveFlowHandler(flows, logger)
	commandBus.Register(commands.SaveFlowCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			saveCmd, ok := cmd.(commands.SaveFlowCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return saveHandler.Handle(ctx, saveCmd)
		},
	})

	importHandler := commandhandlers.NewImportFlowHandler(flows, logger)
	commandBus.Register(commands.ImportFlowCommand{}, &CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			importCmd, ok := cmd.(commands.ImportFlowCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			_, err := importHandler.Handle(ctx, importCmd)
			return err
		},
	})

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(flows *services.FlowService, logger *zap.Logger) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	getFlowHandler := queryhandlers.NewGetFlowHandler(flows, logger)
	queryBus.Register(queries.GetFlowQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetFlowQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getFlowHandler.Handle(ctx, getQuery)
		},
	})

	exportHandler := queryhandlers.NewExportFlowHandler(flows, logger)
	queryBus.Register(queries.ExportFlowQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			exportQuery, ok := query.(queries.ExportFlowQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return exportHandler.Handle(ctx, exportQuery)
		},
	})

	validateHandler := queryhandlers.NewValidateFlowHandler(flows, logger)
	queryBus.Register(queries.ValidateFlowQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			validateQuery, ok := query.(queries.ValidateFlowQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return validateHandler.Handle(ctx, validateQuery)
		},
	})

	return queryBus
}
