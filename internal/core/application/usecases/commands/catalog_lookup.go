package commands

import (
	"context"

	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"
)

// requireExists turns a negative existence check into errs.ObjectNotFoundError.
func requireExists(
	ctx context.Context,
	exists func(context.Context, kernel.ID) (bool, error),
	name string,
	id kernel.ID,
) error {
	found, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewObjectNotFoundError(name, id)
	}
	return nil
}

// loadProducts fetches every product in ids with one query. The first id
// missing from the catalog, in request order, is reported as not found.
func loadProducts(ctx context.Context, repo ports.CatalogRepository, ids []kernel.ID) (map[kernel.ID]catalog.Product, error) {
	products, err := repo.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
	}
	return products, nil
}

// priceOrderLineItems resolves catalog prices and builds order line items
// with the discount applied.
func priceOrderLineItems(ctx context.Context, repo ports.CatalogRepository, requested []OrderLineItem) ([]order.LineItem, error) {
	ids := make([]kernel.ID, 0, len(requested))
	for _, r := range requested {
		ids = append(ids, r.ProductID)
	}

	products, err := loadProducts(ctx, repo, ids)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(requested))
	for _, r := range requested {
		item, err := order.NewLineItem(r.ProductID, r.Quantity, r.DiscountPercent, products[r.ProductID].Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
