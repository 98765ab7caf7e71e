package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/shipment"
)

// SessionRepository stores workflow sessions with optimistic versioning.
type SessionRepository interface {
	// Add stores a new session.
	Add(ctx context.Context, session *shipment.Session) error

	// Get returns a detached copy of the session.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Session, error)

	// Update stores the session if its version matches the stored one and
	// advances the version; otherwise it returns errs.VersionIsInvalidError.
	Update(ctx context.Context, session *shipment.Session) error
}
