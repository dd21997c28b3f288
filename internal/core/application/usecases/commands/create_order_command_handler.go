package commands

import (
	"context"
	"time"

	"wholesale/internal/core/domain/model/delivery"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
)

// CreateOrderCommandHandler creates the delivery document, the delivery, the
// order and its line items in one transaction, in that order. Line prices and
// the order total come from the catalog, never from the caller.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback(ctx)

	catalogRepo := uow.CatalogRepository()
	if err := requireExists(ctx, catalogRepo.CustomerExists, "customer", cmd.CustomerID()); err != nil {
		return 0, err
	}
	if err := requireExists(ctx, catalogRepo.ManagerExists, "manager", cmd.ManagerID()); err != nil {
		return 0, err
	}

	lineItems, err := priceOrderLineItems(ctx, catalogRepo, cmd.LineItems())
	if err != nil {
		return 0, err
	}

	now := time.Now()

	deliveryRepo := uow.DeliveryRepository()
	doc, err := delivery.NewDocument(now, false, false)
	if err != nil {
		return 0, err
	}
	if err = deliveryRepo.AddDocument(ctx, doc); err != nil {
		return 0, err
	}

	d, err := delivery.NewDelivery(doc.ID(), cmd.DeliveryWindow())
	if err != nil {
		return 0, err
	}
	if err = deliveryRepo.Add(ctx, d); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(cmd.CustomerID(), cmd.ManagerID(), d.ID(), cmd.PaymentType(), now, lineItems)
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, o); err != nil {
		return 0, err
	}
	if err = orderRepo.AddLineItems(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.ID(), nil
}
