package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// NotificationSink sends customer-facing notifications about order lifecycle
// changes. From the placement engine's perspective it is fire-and-forget:
// the engine invokes it after a successful commit, logs failures, and never
// rolls back placement because a notification could not be sent.
type NotificationSink interface {
	// SendOrderConfirmation notifies the customer that their order was placed.
	SendOrderConfirmation(ctx context.Context, aggregate *order.Order) error
}
