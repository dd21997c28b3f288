package commands

import (
	"context"
)

type ChangeSupplyStatusCommandHandler struct {
	uowFactory SupplyUoWFactory
}

func NewChangeSupplyStatusCommandHandler(uowFactory SupplyUoWFactory) ChangeSupplyStatusCommandHandler {
	return ChangeSupplyStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeSupplyStatusCommandHandler) Handle(ctx context.Context, cmd ChangeSupplyStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	supplyRepo := uow.SupplyRepository()
	s, err := supplyRepo.GetForUpdate(ctx, cmd.SupplyID())
	if err != nil {
		return err
	}

	if err = s.ChangeStatus(cmd.Status()); err != nil {
		return err
	}
	if err = supplyRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
