package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"
)

var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand opens a shipping workflow for an order.
type StartSessionCommand struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

func NewStartSessionCommand(orderID kernel.OrderID) (StartSessionCommand, error) {
	if err := orderID.Validate(); err != nil {
		return StartSessionCommand{}, err
	}
	return StartSessionCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}

func (c StartSessionCommand) OrderID() kernel.OrderID {
	return c.orderID
}
