package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"
)

var ErrDeleteSupplyCommandIsNotConstructed = errors.New(
	"DeleteSupplyCommand must be created via NewDeleteSupplyCommand constructor",
)

type DeleteSupplyCommand struct { //nolint:recvcheck //using for validation
	supplyID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteSupplyCommand(supplyID kernel.ID) (DeleteSupplyCommand, error) {
	if err := supplyID.Validate("supplyId"); err != nil {
		return DeleteSupplyCommand{}, err
	}
	return DeleteSupplyCommand{supplyID: supplyID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteSupplyCommand) Validate() error {
	return c.guard.Validate(ErrDeleteSupplyCommandIsNotConstructed)
}

func (c DeleteSupplyCommand) SupplyID() kernel.ID {
	return c.supplyID
}
