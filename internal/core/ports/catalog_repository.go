package ports

import (
	"context"

	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/kernel"
)

// CatalogRepository answers existence and price lookups for reference data and
// maintains customers.
type CatalogRepository interface {
	// GetProducts returns the products found among ids. Missing ids are simply
	// absent from the map.
	GetProducts(ctx context.Context, ids []kernel.ID) (map[kernel.ID]catalog.Product, error)

	CustomerExists(ctx context.Context, id kernel.ID) (bool, error)
	ManagerExists(ctx context.Context, id kernel.ID) (bool, error)
	SupplierExists(ctx context.Context, id kernel.ID) (bool, error)

	AddCustomer(ctx context.Context, customer *catalog.Customer) error
	UpdateCustomer(ctx context.Context, customer *catalog.Customer) error
	DeleteCustomer(ctx context.Context, id kernel.ID) error
}
