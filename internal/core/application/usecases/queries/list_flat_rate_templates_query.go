package queries

import (
	"errors"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrListFlatRateTemplatesQueryIsNotConstructed = errors.New(
	"ListFlatRateTemplatesQuery must be created via NewListFlatRateTemplatesQuery constructor",
)

// ListFlatRateTemplatesQuery lists the flat-rate boxes of one carrier.
type ListFlatRateTemplatesQuery struct {
	carrier string

	guard guard.ConstructorGuard
}

// NewListFlatRateTemplatesQuery lowercases the carrier; an empty carrier is
// rejected.
func NewListFlatRateTemplatesQuery(carrier string) (ListFlatRateTemplatesQuery, error) {
	carrier = strings.ToLower(strings.TrimSpace(carrier))
	if carrier == "" {
		return ListFlatRateTemplatesQuery{}, errs.NewValueIsRequiredError("carrier")
	}
	return ListFlatRateTemplatesQuery{carrier: carrier, guard: guard.NewConstructorGuard()}, nil
}

func (q ListFlatRateTemplatesQuery) Validate() error {
	return q.guard.Validate(ErrListFlatRateTemplatesQueryIsNotConstructed)
}

func (q ListFlatRateTemplatesQuery) Carrier() string { return q.carrier }

type ListFlatRateTemplatesQueryResponse struct {
	ID           string
	DisplayName  string
	Carrier      string
	Length       float64
	Width        float64
	Height       float64
	MaxWeight    float64
	MassUnit     string
	DistanceUnit string
}
