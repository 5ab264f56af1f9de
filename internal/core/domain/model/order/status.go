package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsNotDraft is returned when an operation requires Draft status,
	// such as placing the order or adding items to it.
	ErrOrderIsNotDraft = errors.New("order must be in Draft status")

	// ErrOrderHasNoItems is returned when placement is attempted on an order
	// without any items.
	ErrOrderHasNoItems = errors.New("order must have at least one item")
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──> Placed ──> Shipped ──> Delivered
//
// Placement (Draft -> Placed) is performed by the placement engine and fixes
// the order total. Shipped and Delivered are driven by downstream fulfillment
// workflows; from the placement engine's point of view Placed is terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an order is first created.
	// Draft orders are mutable: items may still be added or changed.
	Draft

	// Placed indicates the order has been committed for fulfillment.
	// The total is fixed and items may no longer change.
	Placed

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Placed:    "Placed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Placed:    "Placed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Placed, Shipped, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidatePlace checks if the status allows placement without performing the transition.
//
// Draft is the only status from which an order can be placed. Any other
// status, including Placed itself, fails with ErrOrderIsNotDraft — placing
// an order twice is not a valid transition.
func (s Status) ValidatePlace() error {
	if s != Draft {
		return fmt.Errorf("%w: current status is %s", ErrOrderIsNotDraft, s.String())
	}
	return nil
}

// ValidateCanHaveTotal validates the consistency between order status and
// the presence of a computed total.
//
// Business rules:
//   - Draft orders must not have a total (it is set only at placement)
//   - Placed, Shipped, and Delivered orders must have a total
func (s Status) ValidateCanHaveTotal(hasTotal bool) error {
	if hasTotal && s == Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a total", s.String()),
		)
	}

	if !hasTotal && s != Draft {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no total", s.String()),
		)
	}

	return nil
}

// Place transitions the status to Placed.
//
// Valid transitions:
//   - Draft -> Placed
//
// Any other starting status fails with ErrOrderIsNotDraft.
// This method is used by Order.Place() to enforce state transitions.
func (s Status) Place() (Status, error) {
	if err := s.ValidatePlace(); err != nil {
		return 0, err
	}

	return Placed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Placed -> Shipped
//
// Shipping is driven by fulfillment workflows, not by the placement engine.
func (s Status) Ship() (Status, error) {
	if s != Placed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to ship", s.String()),
		)
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
