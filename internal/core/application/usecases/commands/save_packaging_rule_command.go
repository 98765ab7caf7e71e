package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"
)

var ErrSavePackagingRuleCommandIsNotConstructed = errors.New(
	"SavePackagingRuleCommand must be created via NewSavePackagingRuleCommand constructor",
)

// SavePackagingRuleCommand stores the current dimensions as the rule for a
// product and quantity.
type SavePackagingRuleCommand struct {
	sessionID kernel.UUID
	productID kernel.ProductID
	quantity  kernel.Quantity
	parcel    kernel.Parcel

	guard guard.ConstructorGuard
}

// NewSavePackagingRuleCommand reports every invalid input at once.
func NewSavePackagingRuleCommand(
	sessionID kernel.UUID,
	productID kernel.ProductID,
	quantity kernel.Quantity,
	length, width, height, weight float64,
) (SavePackagingRuleCommand, error) {
	parcel, parcelErr := kernel.NewParcel(length, width, height, weight)
	if err := errors.Join(
		sessionID.Validate(),
		productID.Validate(),
		quantity.Validate(),
		parcelErr,
	); err != nil {
		return SavePackagingRuleCommand{}, err
	}

	return SavePackagingRuleCommand{
		sessionID: sessionID,
		productID: productID,
		quantity:  quantity,
		parcel:    parcel,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c SavePackagingRuleCommand) Validate() error {
	return c.guard.Validate(ErrSavePackagingRuleCommandIsNotConstructed)
}

func (c SavePackagingRuleCommand) SessionID() kernel.UUID      { return c.sessionID }
func (c SavePackagingRuleCommand) ProductID() kernel.ProductID { return c.productID }
func (c SavePackagingRuleCommand) Quantity() kernel.Quantity   { return c.quantity }
func (c SavePackagingRuleCommand) Parcel() kernel.Parcel       { return c.parcel }
