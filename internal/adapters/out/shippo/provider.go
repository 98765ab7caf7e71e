package shippo

import (
	"context"
	"net/http"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var _ ports.RateProvider = &Client{}

// Quote creates a synchronous shipment and returns its rates in provider order.
// Rates the provider sends malformed are skipped.
func (c *Client) Quote(ctx context.Context, req ports.QuoteRequest) (ports.QuoteResponse, error) {
	if err := req.Package.Validate(); err != nil {
		return ports.QuoteResponse{}, err
	}

	payload := shipmentRequest{
		AddressFrom:     toAddressDTO(req.From),
		AddressTo:       toAddressDTO(req.To),
		Parcels:         []parcelDTO{toParcelDTO(req.Package)},
		CarrierAccounts: req.CarrierAccountIDs,
		Async:           false,
	}

	var resp shipmentResponse
	if err := c.do(ctx, opQuote, http.MethodPost, "/shipments/", nil, payload, &resp); err != nil {
		return ports.QuoteResponse{}, err
	}

	rates := make([]shipment.Rate, 0, len(resp.Rates))
	for _, dto := range resp.Rates {
		rate, err := toRate(dto)
		if err != nil {
			c.logger.WarnContext(ctx, "skipping malformed rate", "rateId", dto.ObjectID, "error", err)
			continue
		}
		rates = append(rates, rate)
	}

	return ports.QuoteResponse{
		Rates:    rates,
		Messages: messageTexts(resp.Messages),
	}, nil
}

// Purchase buys the label for a previously quoted rate. A provider ERROR
// status is returned as a transaction, not as an error.
func (c *Client) Purchase(ctx context.Context, rateID string) (shipment.LabelTransaction, error) {
	rateID = strings.TrimSpace(rateID)
	if rateID == "" {
		return shipment.LabelTransaction{}, errs.NewValueIsRequiredError("rateId")
	}

	var resp transactionResponse
	payload := transactionRequest{Rate: rateID, Async: false}
	if err := c.do(ctx, opPurchase, http.MethodPost, "/transactions/", nil, payload, &resp); err != nil {
		return shipment.LabelTransaction{}, err
	}

	return shipment.NewLabelTransaction(
		shipment.ParseTransactionStatus(resp.Status),
		resp.TrackingNumber,
		resp.LabelURL,
		messageTexts(resp.Messages)...,
	), nil
}

func toAddressDTO(a kernel.Address) addressDTO {
	return addressDTO{
		Name:    a.Name,
		Company: a.Company,
		Street1: a.Street1,
		Street2: a.Street2,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
		Phone:   a.Phone,
		Email:   a.Email,
	}
}

func toParcelDTO(p packaging.Package) parcelDTO {
	parcel := p.Parcel()
	dto := parcelDTO{
		DistanceUnit: kernel.DistanceUnitInch,
		Weight:       parcel.Weight(),
		MassUnit:     kernel.MassUnitOunce,
	}
	if p.Type() == packaging.FlatRate {
		dto.Template = p.TemplateID()
		return dto
	}
	length, width, height := parcel.Length(), parcel.Width(), parcel.Height()
	dto.Length, dto.Width, dto.Height = &length, &width, &height
	return dto
}

func toRate(dto rateDTO) (shipment.Rate, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(dto.Amount))
	if err != nil {
		return shipment.Rate{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	days := 0
	if dto.EstimatedDays != nil {
		days = *dto.EstimatedDays
	}
	return shipment.NewRate(shipment.RateParams{
		ProviderID:       dto.ObjectID,
		CarrierName:      dto.Provider,
		ServiceLevelName: dto.ServiceLevel.Name,
		Amount:           amount,
		Currency:         dto.Currency,
		EstimatedDays:    days,
	})
}
