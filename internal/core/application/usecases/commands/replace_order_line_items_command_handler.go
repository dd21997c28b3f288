package commands

import (
	"context"
)

// ReplaceOrderLineItemsCommandHandler locks the order, deletes its line items,
// inserts the new set and writes the recomputed total. Either all of it
// happens or none.
type ReplaceOrderLineItemsCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewReplaceOrderLineItemsCommandHandler(uowFactory OrderUoWFactory) ReplaceOrderLineItemsCommandHandler {
	return ReplaceOrderLineItemsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ReplaceOrderLineItemsCommandHandler) Handle(ctx context.Context, cmd ReplaceOrderLineItemsCommand) error {
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

	lineItems, err := priceOrderLineItems(ctx, uow.CatalogRepository(), cmd.LineItems())
	if err != nil {
		return err
	}
	if err = o.ReplaceLineItems(lineItems); err != nil {
		return err
	}

	if _, err = orderRepo.DeleteLineItems(ctx, o.ID()); err != nil {
		return err
	}
	if err = orderRepo.AddLineItems(ctx, o); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
