package commands

import (
	"context"

	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/ports"
)

// ChangePackageCommandHandler replaces the session package. A different
// package resets the session to Idle; a change during a purchase is refused.
type ChangePackageCommandHandler struct {
	sessions ports.SessionRepository
	catalog  ports.FlatRateCatalog
	carrier  string
}

func NewChangePackageCommandHandler(
	sessions ports.SessionRepository,
	catalog ports.FlatRateCatalog,
	carrier string,
) ChangePackageCommandHandler {
	return ChangePackageCommandHandler{sessions: sessions, catalog: catalog, carrier: carrier}
}

func (h ChangePackageCommandHandler) Handle(ctx context.Context, cmd ChangePackageCommand) (packaging.Package, error) {
	if err := cmd.Validate(); err != nil {
		return packaging.Package{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return packaging.Package{}, err
	}

	pkg, err := cmd.Spec().Build(ctx, h.catalog, h.carrier)
	if err != nil {
		return packaging.Package{}, err
	}

	current, ok := session.Package()
	unchanged := ok && current.IsEqual(pkg)
	if err = session.ChangePackage(pkg); err != nil {
		return packaging.Package{}, err
	}
	if unchanged {
		return pkg, nil
	}

	if err = h.sessions.Update(ctx, session); err != nil {
		return packaging.Package{}, err
	}

	return pkg, nil
}
