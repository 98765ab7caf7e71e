package commands

import (
	"context"

	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
)

// SavePackagingRuleCommandHandler upserts a rule and mirrors it into the
// session rule store so the next resolve sees it without a re-fetch.
// Saving is refused while the session uses a flat-rate package or a label
// purchase is in flight. Once the rule is committed a version conflict on the
// session reloads it and mirrors the rule again.
type SavePackagingRuleCommandHandler struct {
	uowFactory RuleUoWFactory
	sessions   ports.SessionRepository
}

func NewSavePackagingRuleCommandHandler(
	uowFactory RuleUoWFactory,
	sessions ports.SessionRepository,
) SavePackagingRuleCommandHandler {
	return SavePackagingRuleCommandHandler{uowFactory: uowFactory, sessions: sessions}
}

func (h SavePackagingRuleCommandHandler) Handle(ctx context.Context, cmd SavePackagingRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	if err = session.SaveRule(cmd.ProductID(), cmd.Quantity(), cmd.Parcel()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackagingRuleRepository().Put(ctx, cmd.ProductID(), cmd.Quantity(), cmd.Parcel()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return storeOutcome(ctx, h.sessions, session, func(s *shipment.Session) error {
		return s.Rules().Put(cmd.ProductID(), cmd.Quantity(), cmd.Parcel())
	})
}
