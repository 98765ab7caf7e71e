package commands

import (
	"context"
	"errors"

	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"
)

const sessionStoreAttempts = 3

// storeOutcome writes a session whose change has already happened outside
// the session, such as a paid label or a committed rule. On a version
// conflict the session is reloaded, reapply records the same outcome on the
// fresh copy, and the write is tried again.
func storeOutcome(
	ctx context.Context,
	sessions ports.SessionRepository,
	session *shipment.Session,
	reapply func(*shipment.Session) error,
) error {
	err := sessions.Update(ctx, session)
	for attempt := 1; attempt < sessionStoreAttempts && errors.Is(err, errs.ErrVersionIsInvalid); attempt++ {
		reloaded, getErr := sessions.Get(ctx, session.ID())
		if getErr != nil {
			return errors.Join(err, getErr)
		}
		if applyErr := reapply(reloaded); applyErr != nil {
			return errors.Join(err, applyErr)
		}
		err = sessions.Update(ctx, reloaded)
	}
	return err
}
