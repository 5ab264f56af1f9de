package queries

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDraftOrdersQueryHandler retrieves all draft orders from the database.
// Results are sorted by order ID for consistent output.
type GetDraftOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDraftOrdersQueryHandler creates a handler for draft order queries.
// Requires a GORM database connection for query execution.
func NewGetDraftOrdersQueryHandler(db *gorm.DB) GetDraftOrdersQueryHandler {
	return GetDraftOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in Draft status together
// with their line counts.
func (h GetDraftOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetDraftOrdersQuery,
) ([]GetDraftOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetDraftOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.is_vip_customer,
			COUNT(i.id) AS item_count
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.status = ?
		GROUP BY o.id, o.customer_id, o.is_vip_customer
		ORDER BY o.id
	`, order.Draft).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id         uuid.UUID
			customerID uuid.UUID
			isVIP      bool
			itemCount  int
		)

		if err = rows.Scan(&id, &customerID, &isVIP, &itemCount); err != nil {
			return nil, err
		}

		var response GetDraftOrdersQueryResponse
		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		response.IsVIPCustomer = isVIP
		response.ItemCount = itemCount

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
