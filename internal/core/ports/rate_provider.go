package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/model/shipment"
)

// QuoteRequest describes one single-parcel quote.
type QuoteRequest struct {
	From    kernel.Address
	To      kernel.Address
	Package packaging.Package

	// CarrierAccountIDs is nil for an unrestricted quote.
	CarrierAccountIDs []string
}

// QuoteResponse holds the rates in provider order and any provider messages.
type QuoteResponse struct {
	Rates    []shipment.Rate
	Messages []string
}

// RateProvider is the remote quoting and label service. Failures are
// returned as *errs.ProviderError.
type RateProvider interface {
	Quote(ctx context.Context, req QuoteRequest) (QuoteResponse, error)
	Purchase(ctx context.Context, rateID string) (shipment.LabelTransaction, error)
}
