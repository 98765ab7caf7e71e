package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/pkg/guard"
)

var ErrChangeCarriersCommandIsNotConstructed = errors.New(
	"ChangeCarriersCommand must be created via NewChangeCarriersCommand constructor",
)

// ChangeCarriersCommand replaces the carrier selection of a session.
type ChangeCarriersCommand struct {
	sessionID kernel.UUID
	carriers  shipment.CarrierSelection

	guard guard.ConstructorGuard
}

func NewChangeCarriersCommand(sessionID kernel.UUID, carriers shipment.CarrierSelection) (ChangeCarriersCommand, error) {
	if err := errors.Join(sessionID.Validate(), carriers.Validate()); err != nil {
		return ChangeCarriersCommand{}, err
	}
	return ChangeCarriersCommand{sessionID: sessionID, carriers: carriers, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeCarriersCommand) Validate() error {
	return c.guard.Validate(ErrChangeCarriersCommandIsNotConstructed)
}

func (c ChangeCarriersCommand) SessionID() kernel.UUID              { return c.sessionID }
func (c ChangeCarriersCommand) Carriers() shipment.CarrierSelection { return c.carriers }
