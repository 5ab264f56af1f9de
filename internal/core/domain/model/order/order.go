package order

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order in the system. It is the aggregate root that
// manages the order lifecycle from Draft through placement to fulfillment.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid customer identifier
//   - Items can only be added while the order is in Draft status
//   - The total value is set exactly once, at placement time, and never in Draft
//   - Status transitions follow defined business rules (Draft -> Placed -> Shipped -> Delivered)
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. The placement engine is the only
// writer of status and total within this core; fulfillment transitions are
// driven by other workflows.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who owns the order
	customerID kernel.UUID

	// isVIPCustomer entitles the customer to a placement-time discount
	isVIPCustomer bool

	// status represents the current state in the order lifecycle
	status Status

	// totalValue is the exact monetary total, fixed at placement (nil in Draft)
	totalValue *kernel.Money

	// items holds the order lines in insertion order
	items []Item

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Draft status with no items.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Identifier of the owning customer (must be a valid UUID)
//   - isVIPCustomer: Whether the customer is entitled to the VIP discount
//
// Returns the created order, or a validation error if any identifier is invalid.
func NewOrder(id kernel.UUID, customerID kernel.UUID, isVIPCustomer bool) (*Order, error) {
	order := &Order{
		status:        Draft,
		isVIPCustomer: isVIPCustomer,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence.
// It validates all parts and the consistency between status and total:
// a Draft order must not carry a total, a placed one must.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	isVIPCustomer bool,
	status Status,
	totalValue *kernel.Money,
	items []Item,
) (*Order, error) {
	order := &Order{
		isVIPCustomer: isVIPCustomer,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status, totalValue),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
//
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who owns the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// IsVIPCustomer reports whether the owning customer holds the VIP flag.
func (o *Order) IsVIPCustomer() bool {
	return o.isVIPCustomer
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalValue returns the exact monetary total fixed at placement.
// Returns nil while the order is still in Draft.
func (o *Order) TotalValue() *kernel.Money {
	return o.totalValue
}

// Items returns a copy of the order lines in insertion order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// AddItem appends an order line to a Draft order.
//
// This method enforces the following business rules:
//   - The item must be a validly constructed Item
//   - The order must be in Draft status (ErrOrderIsNotDraft otherwise)
//
// Placed orders are immutable with respect to their items: the total fixed
// at placement must keep matching the lines it was computed from.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidatePlace(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// ValidatePlaceable checks the placement preconditions that belong to the
// aggregate, in order: the order must be in Draft status and must have at
// least one item. The first failing check wins.
//
// Returns:
//   - ErrOrderIsNotDraft if the order is not in Draft status
//   - ErrOrderHasNoItems if the order has no items
func (o *Order) ValidatePlaceable() error {
	if err := o.status.ValidatePlace(); err != nil {
		return err
	}

	if len(o.items) == 0 {
		return ErrOrderHasNoItems
	}

	return nil
}

// Place transitions the order from Draft to Placed, fixing its total.
//
// The total is computed by the caller (the placement engine, via the pricing
// service) and must be a validly constructed Money. Place revalidates the
// aggregate-level preconditions so the transition cannot be reached in an
// invalid state even if the caller skipped ValidatePlaceable.
//
// After successful placement the order's total is fixed and items may no
// longer change; Placed is terminal from the placement engine's point of view.
func (o *Order) Place(totalValue kernel.Money) error {
	if err := totalValue.Validate(); err != nil {
		return err
	}

	if err := o.ValidatePlaceable(); err != nil {
		return err
	}

	newStatus, err := o.status.Place()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.totalValue = &totalValue
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer's identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setStatus validates and sets the status together with the total,
// enforcing their consistency. Used only during restoration.
func (o *Order) setStatus(status Status, totalValue *kernel.Money) error {
	if err := status.Validate(); err != nil {
		return err
	}

	if totalValue != nil {
		if err := totalValue.Validate(); err != nil {
			return err
		}
	}

	if err := status.ValidateCanHaveTotal(totalValue != nil); err != nil {
		return err
	}

	o.status = status
	o.totalValue = totalValue
	return nil
}

// setItems validates and sets the order lines. Used only during restoration.
func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
