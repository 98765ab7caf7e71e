// Package kernel holds the value objects shared across the shipping domain:
// Parcel (inches and ounces), Address, the numeric ProductID/OrderID/Quantity
// identifiers and the UUID used for workflow sessions.
package kernel
