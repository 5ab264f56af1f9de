package kernel

import (
	"errors"

	"ordering/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created
// through the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated identity invoking an operation.
// Whether the actor is an administrator is derived externally from role
// membership; the domain treats it as already resolved input.
//
// Actor is an immutable value object and is never persisted by the core.
type Actor struct { //nolint:recvcheck //using for validation
	id              UUID
	isAdministrator bool

	guard guard.ConstructorGuard
}

// NewActor creates an Actor with the given identifier and administrator flag.
// Returns an error if the identifier is invalid.
func NewActor(id UUID, isAdministrator bool) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:              id,
		isAdministrator: isAdministrator,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// ID returns the actor's unique identifier.
func (a Actor) ID() UUID {
	return a.id
}

// IsAdministrator reports whether the actor holds the administrator role.
func (a Actor) IsAdministrator() bool {
	return a.isAdministrator
}

// CanManageOrderOf reports whether the actor may operate on orders that belong
// to the given customer. Administrators may manage any order; other actors
// only their own.
func (a Actor) CanManageOrderOf(customerID UUID) bool {
	return a.isAdministrator || a.id.IsEqual(customerID)
}

// Validate ensures the Actor was created through the constructor.
// Returns ErrActorIsNotConstructed for a zero-value instance.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}
