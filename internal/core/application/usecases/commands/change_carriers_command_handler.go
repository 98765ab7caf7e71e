package commands

import (
	"context"

	"shipdesk/internal/core/ports"
)

// ChangeCarriersCommandHandler applies a carrier selection change with the
// same reset rules as a package change. An unchanged selection is not stored.
type ChangeCarriersCommandHandler struct {
	sessions ports.SessionRepository
}

func NewChangeCarriersCommandHandler(sessions ports.SessionRepository) ChangeCarriersCommandHandler {
	return ChangeCarriersCommandHandler{sessions: sessions}
}

func (h ChangeCarriersCommandHandler) Handle(ctx context.Context, cmd ChangeCarriersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	unchanged := session.Carriers().IsEqual(cmd.Carriers())
	if err = session.ChangeCarrierSelection(cmd.Carriers()); err != nil {
		return err
	}
	if unchanged {
		return nil
	}

	return h.sessions.Update(ctx, session)
}
