// Package services provides domain services that do not belong to a single
// aggregate.
//
// The package includes:
//   - PackagingResolver: derives the parcel for a product and quantity from a
//     flat-rate template, a saved rule, the product's own dimensions or the
//     default parcel, in that order
//
// Resolution is pure: callers gather product dimensions, rules, the order-line
// quantity and the catalog, and apply the result to a session.
package services
