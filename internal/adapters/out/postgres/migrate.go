package postgres

import (
	"context"
	"fmt"

	"wholesale/internal/adapters/out/postgres/catalogrepo"
	"wholesale/internal/adapters/out/postgres/deliveryrepo"
	"wholesale/internal/adapters/out/postgres/orderrepo"
	"wholesale/internal/adapters/out/postgres/supplyrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&catalogrepo.CustomerDTO{},
		&catalogrepo.ManagerDTO{},
		&catalogrepo.SupplierDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.WarehouseDTO{},
		&catalogrepo.WarehouseProductDTO{},
		&deliveryrepo.DocumentDTO{},
		&deliveryrepo.DeliveryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&supplyrepo.DocumentDTO{},
		&supplyrepo.SupplyDTO{},
		&supplyrepo.LineItemDTO{},
	}
}

// Migrate creates or updates the schema, foreign keys included.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
