package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/pkg/guard"
)

var ErrChangeSupplyStatusCommandIsNotConstructed = errors.New(
	"ChangeSupplyStatusCommand must be created via NewChangeSupplyStatusCommand constructor",
)

type ChangeSupplyStatusCommand struct { //nolint:recvcheck //using for validation
	supplyID kernel.ID
	status   supply.Status

	guard guard.ConstructorGuard
}

func NewChangeSupplyStatusCommand(supplyID kernel.ID, status supply.Status) (ChangeSupplyStatusCommand, error) {
	if err := errors.Join(supplyID.Validate("supplyId"), status.Validate()); err != nil {
		return ChangeSupplyStatusCommand{}, err
	}
	return ChangeSupplyStatusCommand{
		supplyID: supplyID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeSupplyStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeSupplyStatusCommandIsNotConstructed)
}

func (c ChangeSupplyStatusCommand) SupplyID() kernel.ID {
	return c.supplyID
}

func (c ChangeSupplyStatusCommand) Status() supply.Status {
	return c.status
}
