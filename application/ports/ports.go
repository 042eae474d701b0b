package ports

import (
	"context"

	"pipeline-backend/domain/events"
)

// EventBus publishes domain events to interested consumers.
// This is a port in hexagonal architecture - the application doesn't
// know about the implementation (EventBridge in production, a noop bus
// when event publishing is disabled).
type EventBus interface {
	// Publish sends a single event
	Publish(ctx context.Context, event events.DomainEvent) error

	// PublishBatch sends multiple events
	PublishBatch(ctx context.Context, events []events.DomainEvent) error
}
