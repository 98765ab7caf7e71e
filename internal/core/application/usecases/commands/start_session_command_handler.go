package commands

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
)

// StartSessionCommandHandler loads an order and the packaging rules of every
// product on it, and stores a new Idle session.
//
// Example:
//
//	handler := NewStartSessionCommandHandler(uowFactory, sessions)
//	cmd, _ := NewStartSessionCommand(1001)
//	sessionID, err := handler.Handle(ctx, cmd)
type StartSessionCommandHandler struct {
	uowFactory UoWFactory
	sessions   ports.SessionRepository
}

func NewStartSessionCommandHandler(uowFactory UoWFactory, sessions ports.SessionRepository) StartSessionCommandHandler {
	return StartSessionCommandHandler{uowFactory: uowFactory, sessions: sessions}
}

// Handle returns the id of the new session. Unknown orders yield
// errs.ObjectNotFoundError.
func (h StartSessionCommandHandler) Handle(ctx context.Context, cmd StartSessionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	rules := packaging.NewRuleStore()
	ruleRepo := uow.PackagingRuleRepository()
	for _, productID := range o.ProductIDs() {
		set, getErr := ruleRepo.Get(ctx, productID)
		if getErr != nil {
			return kernel.UUID{}, getErr
		}
		if err = rules.Load(productID, set); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	session, err := shipment.NewSession(kernel.NewUUID(), o.ID(), rules)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.sessions.Add(ctx, session); err != nil {
		return kernel.UUID{}, err
	}

	return session.ID(), nil
}
