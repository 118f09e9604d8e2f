package ports

import (
	"context"

	"github.com/NicollasRezende/flow-management-app/domain/events"
)

// EventPublisher delivers domain events to interested systems. Publishing is
// best effort: editing never fails because an event could not be delivered.
type EventPublisher interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, batch []events.DomainEvent) error
}
