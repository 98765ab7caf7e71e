package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"
)

var ErrPurchaseLabelCommandIsNotConstructed = errors.New(
	"PurchaseLabelCommand must be created via NewPurchaseLabelCommand constructor",
)

// PurchaseLabelCommand buys a label for the session's selected rate.
type PurchaseLabelCommand struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewPurchaseLabelCommand(sessionID kernel.UUID) (PurchaseLabelCommand, error) {
	if err := sessionID.Validate(); err != nil {
		return PurchaseLabelCommand{}, err
	}
	return PurchaseLabelCommand{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (c PurchaseLabelCommand) Validate() error {
	return c.guard.Validate(ErrPurchaseLabelCommandIsNotConstructed)
}

func (c PurchaseLabelCommand) SessionID() kernel.UUID { return c.sessionID }
