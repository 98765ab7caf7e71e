package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrSelectRateCommandIsNotConstructed = errors.New(
	"SelectRateCommand must be created via NewSelectRateCommand constructor",
)

// SelectRateCommand picks one rate of the last quote.
type SelectRateCommand struct {
	sessionID kernel.UUID
	rateID    string

	guard guard.ConstructorGuard
}

func NewSelectRateCommand(sessionID kernel.UUID, rateID string) (SelectRateCommand, error) {
	rateID = strings.TrimSpace(rateID)

	var rateErr error
	if rateID == "" {
		rateErr = errs.NewValueIsRequiredError("rateId")
	}
	if err := errors.Join(sessionID.Validate(), rateErr); err != nil {
		return SelectRateCommand{}, err
	}
	return SelectRateCommand{sessionID: sessionID, rateID: rateID, guard: guard.NewConstructorGuard()}, nil
}

func (c SelectRateCommand) Validate() error {
	return c.guard.Validate(ErrSelectRateCommandIsNotConstructed)
}

func (c SelectRateCommand) SessionID() kernel.UUID { return c.sessionID }
func (c SelectRateCommand) RateID() string         { return c.rateID }
