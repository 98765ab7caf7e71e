package shipment

import (
	"errors"
	"slices"
	"strings"

	"shipdesk/internal/pkg/errs"
	"shipdesk/internal/pkg/guard"
)

var ErrCarrierSelectionIsNotConstructed = errors.New(
	"CarrierSelection must be created via AllCarriers or CustomCarriers",
)

// CarrierSelection is either every carrier account on the provider account or
// an explicit set of carrier account ids.
type CarrierSelection struct {
	accountIDs []string
	all        bool

	guard guard.ConstructorGuard
}

// AllCarriers places no carrier filter on the quote.
func AllCarriers() CarrierSelection {
	return CarrierSelection{all: true, guard: guard.NewConstructorGuard()}
}

// CustomCarriers restricts quotes to the given accounts. Blank ids are ignored,
// duplicates collapse and an empty result is a validation error.
func CustomCarriers(accountIDs ...string) (CarrierSelection, error) {
	ids := make([]string, 0, len(accountIDs))
	for _, id := range accountIDs {
		id = strings.TrimSpace(id)
		if id == "" || slices.Contains(ids, id) {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return CarrierSelection{}, errs.NewValueIsRequiredError("carrierAccountIds")
	}
	return CarrierSelection{accountIDs: ids, guard: guard.NewConstructorGuard()}, nil
}

func (c CarrierSelection) Validate() error {
	return c.guard.Validate(ErrCarrierSelectionIsNotConstructed)
}

func (c CarrierSelection) IsAll() bool {
	return c.all
}

// AccountIDs returns nil for All, otherwise a copy of the ids in input order.
func (c CarrierSelection) AccountIDs() []string {
	if c.all {
		return nil
	}
	return slices.Clone(c.accountIDs)
}

// IsEqual compares custom selections as sets.
func (c CarrierSelection) IsEqual(other CarrierSelection) bool {
	if c.all || other.all {
		return c.all == other.all
	}
	if len(c.accountIDs) != len(other.accountIDs) {
		return false
	}
	for _, id := range c.accountIDs {
		if !slices.Contains(other.accountIDs, id) {
			return false
		}
	}
	return true
}

func (c CarrierSelection) String() string {
	if c.all {
		return "all"
	}
	return "custom(" + strings.Join(c.accountIDs, ",") + ")"
}
