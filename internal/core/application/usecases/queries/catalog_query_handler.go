package queries

import (
	"context"

	"wholesale/internal/core/ports"

	"gorm.io/gorm"
)

// CatalogQueryHandler serves the reference lists the order and supply forms
// are filled from.
type CatalogQueryHandler struct {
	db         *gorm.DB
	classifier ports.ErrorClassifier
}

func NewCatalogQueryHandler(db *gorm.DB, classifier ports.ErrorClassifier) CatalogQueryHandler {
	return CatalogQueryHandler{db: db, classifier: classifier}
}

func (h CatalogQueryHandler) ListCustomers(ctx context.Context) ([]CustomerView, error) {
	customers := make([]CustomerView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name, middle_name, phone, email, address, registered_at
		FROM customers
		ORDER BY last_name, first_name, id
	`).Scan(&customers).Error
	if err != nil {
		return nil, h.classifier.Classify("list customers", err)
	}
	return customers, nil
}

func (h CatalogQueryHandler) ListManagers(ctx context.Context) ([]ManagerView, error) {
	managers := make([]ManagerView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, first_name, last_name
		FROM managers
		ORDER BY last_name, first_name, id
	`).Scan(&managers).Error
	if err != nil {
		return nil, h.classifier.Classify("list managers", err)
	}
	return managers, nil
}

func (h CatalogQueryHandler) ListProducts(ctx context.Context) ([]ProductView, error) {
	products := make([]ProductView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, sku, price, unit, min_quantity
		FROM products
		ORDER BY name, id
	`).Scan(&products).Error
	if err != nil {
		return nil, h.classifier.Classify("list products", err)
	}
	return products, nil
}

func (h CatalogQueryHandler) ListSuppliers(ctx context.Context) ([]SupplierView, error) {
	suppliers := make([]SupplierView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, first_name, last_name, phone
		FROM suppliers
		ORDER BY name, id
	`).Scan(&suppliers).Error
	if err != nil {
		return nil, h.classifier.Classify("list suppliers", err)
	}
	return suppliers, nil
}

func (h CatalogQueryHandler) ListWarehouseStock(
	ctx context.Context,
	query ListWarehouseStockQuery,
) ([]WarehouseStockView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stock := make([]WarehouseStockView, 0)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			w.id AS warehouse_id,
			w.address AS warehouse_address,
			p.id AS product_id,
			p.name AS product_name,
			wp.quantity,
			p.min_quantity,
			wp.quantity < p.min_quantity AS low_stock
		FROM warehouse_products wp
		JOIN warehouses w ON w.id = wp.warehouse_id
		JOIN products p ON p.id = wp.product_id
		WHERE (? = 0 OR w.id = ?)
		  AND (NOT ? OR wp.quantity < p.min_quantity)
		ORDER BY w.id, p.name
	`, query.warehouseID.Int64(), query.warehouseID.Int64(), query.lowStockOnly).Scan(&stock).Error
	if err != nil {
		return nil, h.classifier.Classify("list warehouse stock", err)
	}
	return stock, nil
}
