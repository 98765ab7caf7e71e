package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"
)

// PackageSpec is a package as entered by the operator. Custom packages carry
// all four measures; FlatRate packages carry a template id and a weight.
type PackageSpec struct {
	packageType packaging.PackageType
	templateID  string
	parcel      kernel.Parcel
	weight      float64
}

func NewCustomPackageSpec(length, width, height, weight float64) (PackageSpec, error) {
	parcel, err := kernel.NewParcel(length, width, height, weight)
	if err != nil {
		return PackageSpec{}, err
	}
	return PackageSpec{packageType: packaging.Custom, parcel: parcel, weight: weight}, nil
}

func NewFlatRatePackageSpec(templateID string, weight float64) (PackageSpec, error) {
	templateID = strings.TrimSpace(templateID)

	var errList []error
	if templateID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("templateId"))
	}
	if !(weight > 0) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%g is not greater than 0", weight)))
	}
	if err := errors.Join(errList...); err != nil {
		return PackageSpec{}, err
	}
	return PackageSpec{packageType: packaging.FlatRate, templateID: templateID, weight: weight}, nil
}

// NewPackageSpec dispatches on the package type.
func NewPackageSpec(
	packageType packaging.PackageType,
	templateID string,
	length, width, height, weight float64,
) (PackageSpec, error) {
	switch packageType {
	case packaging.Custom:
		return NewCustomPackageSpec(length, width, height, weight)
	case packaging.FlatRate:
		return NewFlatRatePackageSpec(templateID, weight)
	default:
		return PackageSpec{}, packageType.Validate()
	}
}

func (s PackageSpec) Type() packaging.PackageType { return s.packageType }
func (s PackageSpec) TemplateID() string          { return s.templateID }
func (s PackageSpec) Weight() float64             { return s.weight }

// Build turns the spec into a Package, looking flat-rate templates up in the
// catalog of carrier.
func (s PackageSpec) Build(ctx context.Context, catalog ports.FlatRateCatalog, carrier string) (packaging.Package, error) {
	switch s.packageType {
	case packaging.Custom:
		return packaging.NewCustomPackage(s.parcel)
	case packaging.FlatRate:
		c, err := catalog.List(ctx, carrier)
		if err != nil {
			return packaging.Package{}, err
		}
		tpl, err := c.Find(s.templateID)
		if err != nil {
			return packaging.Package{}, err
		}
		return packaging.NewFlatRatePackage(tpl, s.weight)
	default:
		return packaging.Package{}, s.packageType.Validate()
	}
}
