package queries

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetSessionQueryIsNotConstructed = errors.New(
	"GetSessionQuery must be created via NewGetSessionQuery constructor",
)

// GetSessionQuery reads the current state of one workflow session.
type GetSessionQuery struct {
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSessionQuery(sessionID kernel.UUID) (GetSessionQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetSessionQuery{}, err
	}
	return GetSessionQuery{sessionID: sessionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionQueryIsNotConstructed)
}

func (q GetSessionQuery) SessionID() kernel.UUID { return q.sessionID }

// GetSessionQueryResponse is the session read model shown to the operator.
type GetSessionQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.OrderID
	Status         string
	PackageType    string
	Package        *PackageView
	Carriers       CarriersView
	Rates          []RateView
	SelectedRateID string
	Transaction    *TransactionView
	Messages       []string
	Version        uint64
}

type PackageView struct {
	Type       string
	TemplateID string
	Length     float64
	Width      float64
	Height     float64
	Weight     float64
}

type CarriersView struct {
	All        bool
	AccountIDs []string
}

type RateView struct {
	ID               string
	CarrierName      string
	ServiceLevelName string
	Amount           decimal.Decimal
	Currency         string
	EstimatedDays    int
}

type TransactionView struct {
	Status         string
	TrackingNumber string
	LabelURL       string
	Messages       []string
}
