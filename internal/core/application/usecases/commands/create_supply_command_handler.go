package commands

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/supply"
)

// CreateSupplyCommandHandler writes the supply document, the supply and its
// line items in one transaction. The total cost is computed from the line
// prices.
type CreateSupplyCommandHandler struct {
	uowFactory SupplyUoWFactory
}

func NewCreateSupplyCommandHandler(uowFactory SupplyUoWFactory) CreateSupplyCommandHandler {
	return CreateSupplyCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateSupplyCommandHandler) Handle(ctx context.Context, cmd CreateSupplyCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback(ctx)

	catalogRepo := uow.CatalogRepository()
	if err := requireExists(ctx, catalogRepo.SupplierExists, "supplier", cmd.SupplierID()); err != nil {
		return 0, err
	}
	if _, err := loadProducts(ctx, catalogRepo, cmd.ProductIDs()); err != nil {
		return 0, err
	}

	supplyRepo := uow.SupplyRepository()
	doc, err := supply.NewDocument(cmd.Date())
	if err != nil {
		return 0, err
	}
	if err = supplyRepo.AddDocument(ctx, doc); err != nil {
		return 0, err
	}

	s, err := supply.NewSupply(cmd.SupplierID(), doc.ID(), cmd.Date(), cmd.Status(), cmd.LineItems())
	if err != nil {
		return 0, err
	}
	if err = supplyRepo.Add(ctx, s); err != nil {
		return 0, err
	}
	if err = supplyRepo.AddLineItems(ctx, s); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return s.ID(), nil
}
