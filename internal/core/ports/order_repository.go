package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations are responsible for serializing concurrent writers per
// order (e.g., optimistic concurrency or a per-order lock) so that two
// callers cannot both observe Draft and place the same order twice.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items. Returns an errs.ObjectNotFoundError when
	// no order with the given id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
