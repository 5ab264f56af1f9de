package http

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// HeaderIdentityResolver maps the already-authenticated subject identifier
// from the request header to a domain Actor. Administrator role membership
// comes from a configured allow-list of subject ids.
type HeaderIdentityResolver struct {
	adminIDs map[string]struct{}
}

// NewHeaderIdentityResolver creates a resolver with the given administrator
// subject ids.
func NewHeaderIdentityResolver(adminIDs []string) *HeaderIdentityResolver {
	admins := make(map[string]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = struct{}{}
	}

	return &HeaderIdentityResolver{adminIDs: admins}
}

// Resolve parses the subject into an Actor, marking it as administrator when
// the subject is on the allow-list.
func (r *HeaderIdentityResolver) Resolve(_ context.Context, subject string) (kernel.Actor, error) {
	id, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.Actor{}, err
	}

	_, isAdministrator := r.adminIDs[subject]
	return kernel.NewActor(id, isAdministrator)
}
