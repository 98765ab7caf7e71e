package commands

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"
)

var ErrChangePackageCommandIsNotConstructed = errors.New(
	"ChangePackageCommand must be created via NewChangePackageCommand constructor",
)

// ChangePackageCommand applies an operator edit of the package.
type ChangePackageCommand struct {
	sessionID kernel.UUID
	spec      PackageSpec

	guard guard.ConstructorGuard
}

func NewChangePackageCommand(sessionID kernel.UUID, spec PackageSpec) (ChangePackageCommand, error) {
	if err := errors.Join(sessionID.Validate(), spec.Type().Validate()); err != nil {
		return ChangePackageCommand{}, err
	}
	return ChangePackageCommand{sessionID: sessionID, spec: spec, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangePackageCommand) Validate() error {
	return c.guard.Validate(ErrChangePackageCommandIsNotConstructed)
}

func (c ChangePackageCommand) SessionID() kernel.UUID { return c.sessionID }
func (c ChangePackageCommand) Spec() PackageSpec      { return c.spec }
