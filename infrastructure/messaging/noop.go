package messaging

import (
	"context"

	"pipeline-backend/application/ports"
	"pipeline-backend/domain/events"
)

// NoopEventBus discards events. Used when event publishing is disabled
// so handlers can publish unconditionally.
type NoopEventBus struct{}

// NewNoopEventBus creates a discarding event bus
func NewNoopEventBus() ports.EventBus {
	return &NoopEventBus{}
}

// Publish discards the event
func (b *NoopEventBus) Publish(ctx context.Context, event events.DomainEvent) error {
	return nil
}

// PublishBatch discards the events
func (b *NoopEventBus) PublishBatch(ctx context.Context, events []events.DomainEvent) error {
	return nil
}
