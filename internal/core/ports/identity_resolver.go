package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
)

// IdentityResolver resolves the authenticated subject of the current caller
// into a domain Actor, including whether the subject holds the administrator
// role. Role membership is resolved outside the core; the placement engine
// only ever sees the already-resolved Actor.
type IdentityResolver interface {
	// Resolve maps an authenticated subject identifier to an Actor.
	Resolve(ctx context.Context, subject string) (kernel.Actor, error)
}
