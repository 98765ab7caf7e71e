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

// RequestRatesCommandHandler runs one quote cycle.
//
// The session is stored as RatesRequested before the provider is called. An
// empty quote is returned as a NoRates result; a provider failure is returned
// as *errs.ProviderError and leaves the session in RatesRequested. Nothing is
// retried.
type RequestRatesCommandHandler struct {
	uowFactory OrderUoWFactory
	sessions   ports.SessionRepository
	catalog    ports.FlatRateCatalog
	provider   ports.RateProvider
	origin     kernel.Address
	carrier    string
	logger     *slog.Logger
}

func NewRequestRatesCommandHandler(
	uowFactory OrderUoWFactory,
	sessions ports.SessionRepository,
	catalog ports.FlatRateCatalog,
	provider ports.RateProvider,
	origin kernel.Address,
	carrier string,
	logger *slog.Logger,
) RequestRatesCommandHandler {
	return RequestRatesCommandHandler{
		uowFactory: uowFactory,
		sessions:   sessions,
		catalog:    catalog,
		provider:   provider,
		origin:     origin,
		carrier:    carrier,
		logger:     logger.With("component", "request-rates"),
	}
}

func (h RequestRatesCommandHandler) Handle(ctx context.Context, cmd RequestRatesCommand) (shipment.QuoteResult, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.QuoteResult{}, err
	}

	session, err := h.sessions.Get(ctx, cmd.SessionID())
	if err != nil {
		return shipment.QuoteResult{}, err
	}

	pkg, err := cmd.Spec().Build(ctx, h.catalog, h.carrier)
	if err != nil {
		return shipment.QuoteResult{}, err
	}

	to, err := h.destination(ctx, session.OrderID())
	if err != nil {
		return shipment.QuoteResult{}, err
	}

	if err = errors.Join(
		session.ChangePackage(pkg),
		session.ChangeCarrierSelection(cmd.Carriers()),
	); err != nil {
		return shipment.QuoteResult{}, err
	}
	if err = session.BeginRateRequest(); err != nil {
		return shipment.QuoteResult{}, err
	}
	if err = h.sessions.Update(ctx, session); err != nil {
		return shipment.QuoteResult{}, err
	}

	resp, err := h.provider.Quote(ctx, ports.QuoteRequest{
		From:              h.origin,
		To:                to,
		Package:           pkg,
		CarrierAccountIDs: cmd.Carriers().AccountIDs(),
	})
	if err != nil {
		providerErr := asProviderError("quote", err)
		h.logger.Error("quote failed",
			"session", session.ID().String(),
			"order", session.OrderID().String(),
			"error", err)

		if failErr := session.FailRateRequest(providerErr.Messages...); failErr != nil {
			return shipment.QuoteResult{}, errors.Join(providerErr, failErr)
		}
		if updErr := h.sessions.Update(ctx, session); updErr != nil {
			return shipment.QuoteResult{}, errors.Join(providerErr, updErr)
		}
		return shipment.QuoteResult{}, providerErr
	}

	result := shipment.NewQuoteResult(resp.Rates, resp.Messages)
	if err = session.CompleteRateRequest(result); err != nil {
		return shipment.QuoteResult{}, err
	}
	if err = h.sessions.Update(ctx, session); err != nil {
		return shipment.QuoteResult{}, err
	}

	if result.Outcome == shipment.NoRates {
		h.logger.Info("quote returned no rates",
			"session", session.ID().String(),
			"messages", result.Messages)
	}

	return result, nil
}

func (h RequestRatesCommandHandler) destination(ctx context.Context, orderID kernel.OrderID) (kernel.Address, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Address{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return kernel.Address{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return kernel.Address{}, err
	}
	return o.ShippingAddress(), nil
}

// asProviderError keeps provider errors as they are and wraps transport
// failures with a generic marker.
func asProviderError(operation string, err error) *errs.ProviderError {
	var providerErr *errs.ProviderError
	if errors.As(err, &providerErr) {
		return providerErr
	}
	return errs.NewProviderErrorWithCause(operation, err)
}
