package commands

import (
	"errors"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/pkg/guard"
)

var ErrResolvePackageCommandIsNotConstructed = errors.New(
	"ResolvePackageCommand must be created via NewResolvePackageCommand constructor",
)

// ResolvePackageCommand asks for the parcel of a product line, either from
// the custom precedence chain or from a flat-rate template.
type ResolvePackageCommand struct { //nolint:recvcheck //using for validation
	sessionID   kernel.UUID
	productID   kernel.ProductID
	quantity    kernel.Quantity
	packageType packaging.PackageType
	templateID  string

	guard guard.ConstructorGuard
}

// NewResolvePackageCommand floors quantity at 1; the order line may still
// override it when the command is handled.
func NewResolvePackageCommand(
	sessionID kernel.UUID,
	productID kernel.ProductID,
	quantity kernel.Quantity,
	packageType packaging.PackageType,
	templateID string,
) (ResolvePackageCommand, error) {
	cmd := ResolvePackageCommand{
		quantity:   quantity.Normalize(),
		templateID: strings.TrimSpace(templateID),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
		cmd.setPackageType(packageType),
	); err != nil {
		return ResolvePackageCommand{}, err
	}

	return cmd, nil
}

func (c ResolvePackageCommand) Validate() error {
	return c.guard.Validate(ErrResolvePackageCommandIsNotConstructed)
}

func (c ResolvePackageCommand) SessionID() kernel.UUID             { return c.sessionID }
func (c ResolvePackageCommand) ProductID() kernel.ProductID        { return c.productID }
func (c ResolvePackageCommand) Quantity() kernel.Quantity          { return c.quantity }
func (c ResolvePackageCommand) PackageType() packaging.PackageType { return c.packageType }
func (c ResolvePackageCommand) TemplateID() string                 { return c.templateID }

func (c *ResolvePackageCommand) setSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.sessionID = id
	return nil
}

func (c *ResolvePackageCommand) setProductID(id kernel.ProductID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *ResolvePackageCommand) setPackageType(t packaging.PackageType) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.packageType = t
	return nil
}
