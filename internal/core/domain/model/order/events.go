package order

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// EventTypeOrderPlaced is the type discriminator carried by OrderPlacedEvent
// on the message bus.
const EventTypeOrderPlaced = "order.placed"

// OrderPlacedEvent is the integration event raised after an order has been
// durably placed. Delivery is at-least-once; consumers deduplicate by EventID.
type OrderPlacedEvent struct {
	EventID    kernel.UUID
	OrderID    kernel.UUID
	OccurredAt time.Time
}

// NewOrderPlacedEvent creates an OrderPlacedEvent for the given order with a
// fresh event identifier and the current UTC time.
func NewOrderPlacedEvent(orderID kernel.UUID) OrderPlacedEvent {
	return OrderPlacedEvent{
		EventID:    kernel.NewUUID(),
		OrderID:    orderID,
		OccurredAt: time.Now().UTC(),
	}
}
