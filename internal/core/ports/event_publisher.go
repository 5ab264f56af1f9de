package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// EventPublisher publishes integration events to the message bus.
// Like NotificationSink, it is invoked as a post-commit hook: a publish
// failure is logged by the engine and never propagated to the caller.
// Implementations decide the durability of delivery (direct produce vs.
// a transactional-outbox relay).
type EventPublisher interface {
	// PublishOrderPlaced publishes the OrderPlaced event for a durably placed order.
	PublishOrderPlaced(ctx context.Context, event order.OrderPlacedEvent) error
}
