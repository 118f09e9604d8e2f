// Package messaging holds event publisher implementations.
package messaging

import (
	"context"

	"github.com/NicollasRezende/flow-management-app/application/ports"
	"github.com/NicollasRezende/flow-management-app/domain/events"
)

// NoopPublisher discards events. Used when no event bus is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards everything.
func NewNoopPublisher() ports.EventPublisher {
	return NoopPublisher{}
}

// Publish discards the event.
func (NoopPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	return nil
}

// PublishBatch discards the batch.
func (NoopPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	return nil
}
