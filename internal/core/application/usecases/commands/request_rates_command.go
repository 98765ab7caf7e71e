package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/pkg/guard"
)

var ErrRequestRatesCommandIsNotConstructed = errors.New(
	"RequestRatesCommand must be created via NewRequestRatesCommand constructor",
)

// RequestRatesCommand quotes the given package against the given carriers.
// Both become the session's current values before the quote is sent.
type RequestRatesCommand struct {
	sessionID kernel.UUID
	spec      PackageSpec
	carriers  shipment.CarrierSelection

	guard guard.ConstructorGuard
}

// NewRequestRatesCommand validates everything that can be checked without a
// catalog; an empty custom carrier set fails here, before any provider call.
func NewRequestRatesCommand(
	sessionID kernel.UUID,
	spec PackageSpec,
	carriers shipment.CarrierSelection,
) (RequestRatesCommand, error) {
	if err := errors.Join(
		sessionID.Validate(),
		spec.Type().Validate(),
		carriers.Validate(),
	); err != nil {
		return RequestRatesCommand{}, err
	}
	return RequestRatesCommand{
		sessionID: sessionID,
		spec:      spec,
		carriers:  carriers,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RequestRatesCommand) Validate() error {
	return c.guard.Validate(ErrRequestRatesCommandIsNotConstructed)
}

func (c RequestRatesCommand) SessionID() kernel.UUID              { return c.sessionID }
func (c RequestRatesCommand) Spec() PackageSpec                   { return c.spec }
func (c RequestRatesCommand) Carriers() shipment.CarrierSelection { return c.carriers }
