package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetDraftOrdersQueryIsNotConstructed = errors.New(
	"GetDraftOrdersQuery must be created via NewGetDraftOrdersQuery constructor",
)

// GetDraftOrdersQuery retrieves all orders still in Draft status.
// Draft orders are the placement engine's pending workload: they can still
// receive items and are awaiting a placement request.
//
// Example:
//
//	query := NewGetDraftOrdersQuery()
//	handler := NewGetDraftOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get draft orders: %w", err)
//	}
//	fmt.Printf("Found %d draft orders\n", len(orders))
type GetDraftOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDraftOrdersQuery creates a query to retrieve draft orders.
// This is a parameterless query that fetches all orders in Draft status.
func NewGetDraftOrdersQuery() GetDraftOrdersQuery {
	return GetDraftOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDraftOrdersQueryIsNotConstructed if validation fails.
func (q GetDraftOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftOrdersQueryIsNotConstructed)
}

// GetDraftOrdersQueryResponse represents one draft order in the read model.
// ItemCount is the number of lines, not the summed quantity.
type GetDraftOrdersQueryResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	IsVIPCustomer bool
	ItemCount     int
}
