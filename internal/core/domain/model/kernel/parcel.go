package kernel

import (
	"errors"
	"fmt"
	"math"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

const (
	// DistanceUnitInch is the unit of Parcel dimensions.
	DistanceUnitInch = "in"
	// MassUnitOunce is the unit of Parcel weight.
	MassUnitOunce = "oz"
	// MassUnitPound is used by carrier template catalogs for max weights.
	MassUnitPound = "lb"
)

var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the physical package submitted for rating and label purchase.
// Dimensions are in inches, weight in ounces; all four are strictly positive.
type Parcel struct {
	length float64
	width  float64
	height float64
	weight float64

	guard guard.ConstructorGuard
}

// NewParcel validates every field and reports all failures at once.
func NewParcel(length, width, height, weight float64) (Parcel, error) {
	if err := errors.Join(
		validateMeasure("length", length),
		validateMeasure("width", width),
		validateMeasure("height", height),
		validateMeasure("weight", weight),
	); err != nil {
		return Parcel{}, err
	}

	return Parcel{
		length: length,
		width:  width,
		height: height,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MustNewParcel is NewParcel for compile-time constants.
func MustNewParcel(length, width, height, weight float64) Parcel {
	p, err := NewParcel(length, width, height, weight)
	if err != nil {
		panic(err)
	}
	return p
}

func validateMeasure(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", v))
	}
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is not greater than 0", v))
	}
	return nil
}

func (p Parcel) Validate() error {
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

func (p Parcel) Length() float64 { return p.length }
func (p Parcel) Width() float64  { return p.width }
func (p Parcel) Height() float64 { return p.height }
func (p Parcel) Weight() float64 { return p.weight }

// IsEqual compares by value.
func (p Parcel) IsEqual(other Parcel) bool {
	return p.length == other.length &&
		p.width == other.width &&
		p.height == other.height &&
		p.weight == other.weight
}

// WithWeight returns a copy with a new weight; dimensions are kept.
func (p Parcel) WithWeight(weight float64) (Parcel, error) {
	if err := p.Validate(); err != nil {
		return Parcel{}, err
	}
	return NewParcel(p.length, p.width, p.height, weight)
}

func (p Parcel) String() string {
	return fmt.Sprintf("%gx%gx%g %s, %g %s",
		p.length, p.width, p.height, DistanceUnitInch, p.weight, MassUnitOunce)
}
