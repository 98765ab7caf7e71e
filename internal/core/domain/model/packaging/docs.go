// Package packaging models how an order line is boxed for shipping.
//
// The package includes:
//   - PackageType: Custom dimensions or a carrier FlatRate template
//   - FlatRateTemplate and Catalog: the immutable carrier box catalog
//   - RuleSet and RuleStore: saved per-product, per-quantity parcel overrides
//   - Package: a package type bound to the Parcel that will be rated
//
// Key business rules:
//   - Rules are keyed by the exact quantity; saving a rule for an existing key
//     overwrites it
//   - Flat-rate dimensions are fixed by the template; only the weight is
//     adjustable and it may not exceed the template's max weight
//   - Catalog lookups are by template id only
package packaging
