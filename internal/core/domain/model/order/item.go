package order

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem constructor.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is an immutable order line: a product, its exact unit price, and a
// positive quantity. Items are owned by exactly one Order; their sequence
// order is insertion order and irrelevant to total computation.
type Item struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	price     kernel.Money
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates an order line for the given product.
// The price must be a constructed Money and the quantity must be positive.
func NewItem(productID kernel.UUID, price kernel.Money, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through the constructor.
// Returns ErrItemIsNotConstructed if validation fails.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Price returns the exact unit price of the item.
func (i Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns the line total: unit price multiplied by quantity.
func (i Item) Subtotal() (kernel.Money, error) {
	return i.price.MultiplyInt(i.quantity)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	i.productID = productID
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.quantity = quantity
	return nil
}
