package commands

import (
	"context"
	"errors"
	"log/slog"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"
)

// PurchaseLabelCommandHandler buys the selected rate exactly once.
//
// The session is stored as LabelRequested, with its version checked, before
// the provider is called, so a concurrent second purchase fails with a
// version conflict or a state error. SUCCESS and QUEUED transactions are
// written onto the order. If that write fails the session still records the
// issued label and a LabelNotRecordedError is returned. Requests that touch the
// session while the provider call is in flight do not discard the outcome:
// a version conflict reloads the session and records it again.
//
// Example:
//
//	cmd, _ := NewPurchaseLabelCommand(sessionID)
//	tx, err := handler.Handle(ctx, cmd)
//	var providerErr *errs.ProviderError
//	if errors.As(err, &providerErr) {
//	    fmt.Println(providerErr.Message())
//	}
type PurchaseLabelCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionRepository
	provider   ports.RateProvider
	logger     *slog.Logger
}

func NewPurchaseLabelCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionRepository,
	provider ports.RateProvider,
	logger *slog.Logger,
) PurchaseLabelCommandHandler {
	return PurchaseLabelCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		provider:   provider,
		logger:     logger.With("component", "purchase-label"),
	}
}

func (h PurchaseLabelCommandHandler) Handle(ctx context.Context, cmd PurchaseLabelCommand) (shipment.LabelTransaction, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.LabelTransaction{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return shipment.LabelTransaction{}, err
	}

	rate, err := session.BeginPurchase()
	if err != nil {
		return shipment.LabelTransaction{}, err
	}
	if err = h.sessions.Update(ctx, session); err != nil {
		return shipment.LabelTransaction{}, err
	}

	log := h.logger.With(
		"session", session.ID().String(),
		"order", session.OrderID().String(),
		"rate", rate.ProviderID(),
	)

	tx, err := h.provider.Purchase(ctx, rate.ProviderID())
	if err != nil {
		providerErr := asProviderError("purchase", err)
		log.Error("label purchase failed", "error", err)

		fail := func(s *shipment.Session) error {
			return s.FailPurchase(providerErr.Message())
		}
		if failErr := fail(session); failErr != nil {
			return shipment.LabelTransaction{}, errors.Join(providerErr, failErr)
		}
		if updErr := storeOutcome(ctx, h.sessions, session, fail); updErr != nil {
			return shipment.LabelTransaction{}, errors.Join(providerErr, updErr)
		}
		return shipment.LabelTransaction{}, providerErr
	}

	complete := func(s *shipment.Session) error {
		return s.CompletePurchase(tx)
	}
	if err = complete(session); err != nil {
		return tx, err
	}

	if !tx.IsSuccessful() {
		log.Warn("label purchase rejected", "status", string(tx.Status()), "messages", tx.Messages())
		if err = storeOutcome(ctx, h.sessions, session, complete); err != nil {
			return tx, err
		}
		return tx, errs.NewProviderError("purchase", tx.Messages()...)
	}

	var persistErr error
	if err = h.persistLabel(ctx, session.OrderID(), tx); err != nil {
		log.Error("label issued but not saved on order",
			"tracking", tx.TrackingNumber(),
			"error", err)
		persistErr = errs.NewLabelNotRecordedError(int64(session.OrderID()), tx.TrackingNumber(), tx.LabelURL(), err)
	}

	if err = storeOutcome(ctx, h.sessions, session, complete); err != nil {
		log.Error("label issued but session not updated", "tracking", tx.TrackingNumber(), "error", err)
		return tx, errors.Join(persistErr, err)
	}

	log.Info("label issued", "status", string(tx.Status()), "tracking", tx.TrackingNumber())
	return tx, persistErr
}

func (h PurchaseLabelCommandHandler) persistLabel(
	ctx context.Context,
	orderID kernel.OrderID,
	tx shipment.LabelTransaction,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().PersistLabel(ctx, orderID, tx.TrackingNumber(), tx.LabelURL()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
