// Package order provides the storefront order as seen by the shipping desk:
// its identity, shipping address, order lines and the shipping label written
// back after purchase.
//
// Key business rules:
//   - An order has a valid id and a shipping address that can be rated
//   - Order lines hold a positive quantity per product; the line quantity is
//     authoritative over any quantity typed by the operator
//   - A label is attached with both a tracking number and a label URL
package order
