package shipment

import (
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRateIsNotConstructed = errors.New("Rate must be created via NewRate constructor")

// Rate is one quoted service option. It lives only as long as the quote cycle
// that produced it.
type Rate struct {
	providerID       string
	carrierName      string
	serviceLevelName string
	amount           decimal.Decimal
	currency         string
	estimatedDays    int

	guard guard.ConstructorGuard
}

// RateParams carries the quote fields as reported by the provider.
type RateParams struct {
	ProviderID       string
	CarrierName      string
	ServiceLevelName string
	Amount           decimal.Decimal
	Currency         string
	EstimatedDays    int
}

func NewRate(p RateParams) (Rate, error) {
	var errList []error
	if strings.TrimSpace(p.ProviderID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("providerId"))
	}
	if p.Amount.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", p.Amount.String())))
	}
	if p.EstimatedDays < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"estimatedDays", fmt.Errorf("%d is negative", p.EstimatedDays)))
	}
	if err := errors.Join(errList...); err != nil {
		return Rate{}, err
	}

	return Rate{
		providerID:       strings.TrimSpace(p.ProviderID),
		carrierName:      p.CarrierName,
		serviceLevelName: p.ServiceLevelName,
		amount:           p.Amount,
		currency:         strings.ToUpper(p.Currency),
		estimatedDays:    p.EstimatedDays,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (r Rate) Validate() error {
	return r.guard.Validate(ErrRateIsNotConstructed)
}

func (r Rate) ProviderID() string       { return r.providerID }
func (r Rate) CarrierName() string      { return r.carrierName }
func (r Rate) ServiceLevelName() string { return r.serviceLevelName }
func (r Rate) Amount() decimal.Decimal  { return r.amount }
func (r Rate) Currency() string         { return r.currency }

// EstimatedDays is 0 when the carrier gave no estimate.
func (r Rate) EstimatedDays() int { return r.estimatedDays }

func (r Rate) IsEqual(other Rate) bool {
	return r.providerID == other.providerID
}
