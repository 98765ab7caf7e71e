// Package shipment provides the rate-shopping and label-purchase workflow for
// one order-editing session.
//
// The package includes:
//   - Session: the aggregate root holding the current package, carrier
//     selection, quoted rates, the selected rate and the last label transaction
//   - Status: the state machine that guards every workflow step
//   - CarrierSelection, Rate, LabelTransaction and QuoteResult value objects
//
// Key business rules:
//   - Rates are only purchasable against the package they were quoted for; any
//     package or carrier change resets the session to Idle
//   - A label is purchased only from RateSelected, and the session leaves that
//     state before the provider is called, so a purchase is never repeated
//     without a fresh rate selection
//   - An empty quote is a NoRates outcome, not an error
package shipment
