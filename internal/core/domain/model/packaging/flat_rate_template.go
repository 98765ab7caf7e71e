package packaging

import (
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrFlatRateTemplateIsNotConstructed = errors.New(
	"FlatRateTemplate must be created via NewFlatRateTemplate constructor",
)

// FlatRateTemplate is a carrier-defined box or envelope with prenegotiated
// pricing. Templates are immutable once built.
type FlatRateTemplate struct {
	id           string
	displayName  string
	carrier      string
	dimensions   kernel.Parcel
	massUnit     string
	distanceUnit string

	guard guard.ConstructorGuard
}

// FlatRateTemplateParams groups the template attributes as delivered by a
// catalog source.
type FlatRateTemplateParams struct {
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

// NewFlatRateTemplate validates the template. Units default to lb and in,
// which is how carrier catalogs publish box limits.
func NewFlatRateTemplate(p FlatRateTemplateParams) (FlatRateTemplate, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return FlatRateTemplate{}, errs.NewValueIsRequiredError("templateId")
	}

	dims, err := kernel.NewParcel(p.Length, p.Width, p.Height, p.MaxWeight)
	if err != nil {
		return FlatRateTemplate{}, errs.NewValueIsInvalidErrorWithCause("template "+id, err)
	}

	massUnit := p.MassUnit
	if massUnit == "" {
		massUnit = kernel.MassUnitPound
	}
	distanceUnit := p.DistanceUnit
	if distanceUnit == "" {
		distanceUnit = kernel.DistanceUnitInch
	}

	return FlatRateTemplate{
		id:           id,
		displayName:  strings.TrimSpace(p.DisplayName),
		carrier:      strings.ToLower(strings.TrimSpace(p.Carrier)),
		dimensions:   dims,
		massUnit:     massUnit,
		distanceUnit: distanceUnit,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (t FlatRateTemplate) Validate() error {
	return t.guard.Validate(ErrFlatRateTemplateIsNotConstructed)
}

func (t FlatRateTemplate) ID() string           { return t.id }
func (t FlatRateTemplate) DisplayName() string  { return t.displayName }
func (t FlatRateTemplate) Carrier() string      { return t.carrier }
func (t FlatRateTemplate) Length() float64      { return t.dimensions.Length() }
func (t FlatRateTemplate) Width() float64       { return t.dimensions.Width() }
func (t FlatRateTemplate) Height() float64      { return t.dimensions.Height() }
func (t FlatRateTemplate) MaxWeight() float64   { return t.dimensions.Weight() }
func (t FlatRateTemplate) MassUnit() string     { return t.massUnit }
func (t FlatRateTemplate) DistanceUnit() string { return t.distanceUnit }

// Parcel returns the template dimensions with the max weight as weight.
func (t FlatRateTemplate) Parcel() kernel.Parcel {
	return t.dimensions
}

// ValidateWeight checks an operator-entered weight against the template limit.
func (t FlatRateTemplate) ValidateWeight(weight float64) error {
	if weight <= 0 || weight > t.MaxWeight() {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"weight", weight, 0, t.MaxWeight(),
			fmt.Errorf("template %s accepts weights in (0, %g]", t.id, t.MaxWeight()),
		)
	}
	return nil
}
