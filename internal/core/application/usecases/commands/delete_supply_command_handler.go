package commands

import (
	"context"
)

// DeleteSupplyCommandHandler locks the supply first, so a missing supply
// fails before anything is deleted, then removes line items, the supply and
// its document.
type DeleteSupplyCommandHandler struct {
	uowFactory SupplyUoWFactory
}

func NewDeleteSupplyCommandHandler(uowFactory SupplyUoWFactory) DeleteSupplyCommandHandler {
	return DeleteSupplyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteSupplyCommandHandler) Handle(ctx context.Context, cmd DeleteSupplyCommand) error {
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

	if _, err = supplyRepo.DeleteLineItems(ctx, s.ID()); err != nil {
		return err
	}
	if err = supplyRepo.Delete(ctx, s.ID()); err != nil {
		return err
	}
	if err = supplyRepo.DeleteDocument(ctx, s.DocumentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
