package services

import (
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/pkg/errs"
)

// Source tells which precedence step produced a resolved package.
type Source string

const (
	SourceFlatRate Source = "flat_rate_template"
	SourceRule     Source = "saved_rule"
	SourceNative   Source = "product_dimensions"
	SourceDefault  Source = "default"
)

// DefaultParcel is the last-resort parcel, 10 x 8 x 6 in and 2 oz.
func DefaultParcel() kernel.Parcel {
	return kernel.MustNewParcel(10, 8, 6, 2)
}

// ResolveRequest carries everything resolution needs. The caller gathers it;
// the resolver itself does no I/O.
type ResolveRequest struct {
	ProductID kernel.ProductID

	// Quantity is the operator-entered quantity.
	Quantity kernel.Quantity

	// OrderQuantity is the order-line quantity of the product, 0 when the
	// product is not on the order.
	OrderQuantity kernel.Quantity

	PackageType packaging.PackageType
	TemplateID  string

	// NativeDimensions are the product's recorded dimensions, if any.
	NativeDimensions *kernel.Parcel

	Rules   *packaging.RuleStore
	Catalog packaging.Catalog
}

// Resolution is the resolved package with its provenance.
type Resolution struct {
	Package  packaging.Package
	Source   Source
	Quantity kernel.Quantity
}

// PackagingResolver derives the parcel to quote for a product and quantity.
//
// Precedence, highest first:
//  1. FlatRate: the template's dimensions with its max weight
//  2. Custom: a saved rule for the exact (product, quantity)
//  3. Custom: the product's native dimensions
//  4. Custom: the default parcel
//
// Example usage:
//
//	resolver := services.NewPackagingResolver(services.DefaultParcel())
//	res, err := resolver.Resolve(services.ResolveRequest{
//	    ProductID:   42,
//	    Quantity:    3,
//	    PackageType: packaging.Custom,
//	    Rules:       session.Rules(),
//	})
type PackagingResolver struct {
	defaultParcel kernel.Parcel
}

// NewPackagingResolver uses DefaultParcel when defaultParcel is a zero value.
func NewPackagingResolver(defaultParcel kernel.Parcel) PackagingResolver {
	if defaultParcel.Validate() != nil {
		defaultParcel = DefaultParcel()
	}
	return PackagingResolver{defaultParcel: defaultParcel}
}

// Resolve applies the precedence rules. A missing template id is a
// validation error and an unknown one is not found.
func (r PackagingResolver) Resolve(req ResolveRequest) (Resolution, error) {
	if err := req.ProductID.Validate(); err != nil {
		return Resolution{}, err
	}
	if err := req.PackageType.Validate(); err != nil {
		return Resolution{}, err
	}

	quantity := NormalizeQuantity(req.Quantity, req.OrderQuantity)

	if req.PackageType == packaging.FlatRate {
		pkg, err := r.resolveFlatRate(req.Catalog, req.TemplateID)
		if err != nil {
			return Resolution{}, err
		}
		return Resolution{Package: pkg, Source: SourceFlatRate, Quantity: quantity}, nil
	}

	parcel, source := r.resolveCustom(req, quantity)
	pkg, err := packaging.NewCustomPackage(parcel)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Package: pkg, Source: source, Quantity: quantity}, nil
}

func (r PackagingResolver) resolveFlatRate(catalog packaging.Catalog, templateID string) (packaging.Package, error) {
	if templateID == "" {
		return packaging.Package{}, errs.NewValueIsRequiredError("templateId")
	}
	tpl, err := catalog.Find(templateID)
	if err != nil {
		return packaging.Package{}, err
	}
	return packaging.NewFlatRatePackage(tpl, tpl.MaxWeight())
}

func (r PackagingResolver) resolveCustom(req ResolveRequest, quantity kernel.Quantity) (kernel.Parcel, Source) {
	if rule, ok := req.Rules.Lookup(req.ProductID, quantity); ok && rule.Validate() == nil {
		return rule, SourceRule
	}
	if req.NativeDimensions != nil && req.NativeDimensions.Validate() == nil {
		return *req.NativeDimensions, SourceNative
	}
	return r.defaultParcel, SourceDefault
}

// NormalizeQuantity prefers a positive order-line quantity over the
// operator's, and floors the result at 1.
func NormalizeQuantity(requested, ordered kernel.Quantity) kernel.Quantity {
	if ordered > 0 {
		return ordered
	}
	return requested.Normalize()
}
