package packaging

import (
	"errors"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrPackageIsNotConstructed = errors.New("Package must be created via NewCustomPackage or NewFlatRatePackage")

// Package is the package type together with the Parcel that is quoted and
// purchased. FlatRate packages also carry their template id.
type Package struct {
	packageType PackageType
	templateID  string
	parcel      kernel.Parcel

	guard guard.ConstructorGuard
}

func NewCustomPackage(parcel kernel.Parcel) (Package, error) {
	if err := parcel.Validate(); err != nil {
		return Package{}, err
	}
	return Package{
		packageType: Custom,
		parcel:      parcel,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewFlatRatePackage keeps the template dimensions and applies weight, which
// must lie in (0, maxWeight].
func NewFlatRatePackage(template FlatRateTemplate, weight float64) (Package, error) {
	if err := template.Validate(); err != nil {
		return Package{}, err
	}
	if err := template.ValidateWeight(weight); err != nil {
		return Package{}, err
	}
	parcel, err := template.Parcel().WithWeight(weight)
	if err != nil {
		return Package{}, err
	}
	return Package{
		packageType: FlatRate,
		templateID:  template.ID(),
		parcel:      parcel,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestorePackage rebuilds a package from storage without a catalog lookup.
func RestorePackage(packageType PackageType, templateID string, parcel kernel.Parcel) (Package, error) {
	if err := packageType.Validate(); err != nil {
		return Package{}, err
	}
	if err := parcel.Validate(); err != nil {
		return Package{}, err
	}
	templateID = strings.TrimSpace(templateID)
	if packageType == FlatRate && templateID == "" {
		return Package{}, errs.NewValueIsRequiredError("templateId")
	}
	if packageType == Custom {
		templateID = ""
	}
	return Package{
		packageType: packageType,
		templateID:  templateID,
		parcel:      parcel,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p Package) Type() PackageType     { return p.packageType }
func (p Package) TemplateID() string    { return p.templateID }
func (p Package) Parcel() kernel.Parcel { return p.parcel }

func (p Package) IsEqual(other Package) bool {
	return p.packageType == other.packageType &&
		p.templateID == other.templateID &&
		p.parcel.IsEqual(other.parcel)
}
