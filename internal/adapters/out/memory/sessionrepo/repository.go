// Package sessionrepo keeps workflow sessions in process memory.
package sessionrepo

import (
	"context"
	"sync"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/pkg/errs"
)

// Repository stores session snapshots keyed by id. Every read hands out a
// detached copy, and Update rejects a session whose version is stale.
type Repository struct {
	mu       sync.RWMutex
	sessions map[string]shipment.SessionState
}

func NewRepository() *Repository {
	return &Repository{sessions: make(map[string]shipment.SessionState)}
}

func (r *Repository) Add(_ context.Context, session *shipment.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := session.ID().String()
	if _, exists := r.sessions[key]; exists {
		return errs.NewValueIsInvalidError("session " + key + " already exists")
	}
	r.sessions[key] = session.State()
	return nil
}

func (r *Repository) Get(_ context.Context, id kernel.UUID) (*shipment.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	st, ok := r.sessions[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return shipment.RestoreSession(st)
}

// Update stores the session and advances its version.
func (r *Repository) Update(_ context.Context, session *shipment.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := session.ID().String()
	stored, ok := r.sessions[key]
	if !ok {
		return errs.NewObjectNotFoundError("session", key)
	}
	if stored.Version != session.Version() {
		return errs.NewVersionIsInvalidError("session", stored.Version, session.Version())
	}

	session.AdvanceVersion()
	r.sessions[key] = session.State()
	return nil
}

// Len reports the number of stored sessions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
