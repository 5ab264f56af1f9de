// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The monetary total is stored as an exact numeric column; it is NULL while
// the order is still in Draft.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	IsVIPCustomer bool
	Status        int                 `gorm:"index"`
	TotalValue    decimal.NullDecimal `gorm:"type:numeric"`
	Items         []ItemDTO           `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents a single order line row. The serial primary key
// preserves insertion order of the lines within an order.
type ItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index"`
	ProductID uuid.UUID       `gorm:"type:uuid"`
	Price     decimal.Decimal `gorm:"type:numeric"`
	Quantity  int
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional placement total and all lines.
func fromDomain(aggregate *order.Order) OrderDTO {
	var totalValue decimal.NullDecimal
	if total := aggregate.TotalValue(); total != nil {
		totalValue = decimal.NewNullDecimal(total.Amount())
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			ProductID: item.ProductID().Bytes(),
			Price:     item.Price().Amount(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		IsVIPCustomer: aggregate.IsVIPCustomer(),
		Status:        int(aggregate.Status()),
		TotalValue:    totalValue,
		Items:         itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines and total using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var totalValue *kernel.Money
	if dto.TotalValue.Valid {
		total, moneyErr := kernel.NewMoneyFromDecimal(dto.TotalValue.Decimal)
		if moneyErr != nil {
			return nil, moneyErr
		}
		totalValue = &total
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		price, itemErr := kernel.NewMoneyFromDecimal(itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, price, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, dto.IsVIPCustomer, order.Status(dto.Status), totalValue, items)
}
