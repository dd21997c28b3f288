package commands

import (
	"context"
	"errors"

	"wholesale/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes an order in reverse creation order: line
// items, the order, then its delivery and delivery document when nothing else
// references them. A missing order is reported before anything is deleted.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = orderRepo.DeleteLineItems(ctx, o.ID()); err != nil {
		return err
	}
	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.Get(ctx, o.DeliveryID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return uow.Commit(ctx)
	case err != nil:
		return err
	}

	if _, err = deliveryRepo.Delete(ctx, d.ID()); err != nil {
		return err
	}
	if _, err = deliveryRepo.DeleteDocuments(ctx, d.DocumentID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
