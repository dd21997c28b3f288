package queries

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLineItemView shows a line next to the current catalog price. Price is
// what the customer pays per unit after the discount.
type OrderLineItemView struct {
	ProductID       kernel.ID
	ProductName     string
	Unit            string
	Quantity        int
	CatalogPrice    decimal.Decimal
	DiscountPercent decimal.Decimal
	Price           decimal.Decimal
	Total           decimal.Decimal
}

type GetOrderLineItemsQueryHandler struct {
	db         *gorm.DB
	classifier ports.ErrorClassifier
}

func NewGetOrderLineItemsQueryHandler(db *gorm.DB, classifier ports.ErrorClassifier) GetOrderLineItemsQueryHandler {
	return GetOrderLineItemsQueryHandler{db: db, classifier: classifier}
}

func (h GetOrderLineItemsQueryHandler) Handle(ctx context.Context, query GetOrderQuery) ([]OrderLineItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if err := requireRow(tx, h.classifier, "order", "orders", query.orderID); err != nil {
		return nil, err
	}

	rows, err := tx.Raw(`
		SELECT
			li.product_id,
			p.name,
			p.unit,
			li.quantity,
			p.price,
			li.discount_percent,
			li.price,
			li.price * li.quantity
		FROM order_line_items li
		JOIN products p ON p.id = li.product_id
		WHERE li.order_id = ?
		ORDER BY li.product_id
	`, query.orderID.Int64()).Rows()
	if err != nil {
		return nil, h.classifier.Classify("list order line items", err)
	}
	defer rows.Close()

	items := make([]OrderLineItemView, 0)
	for rows.Next() {
		var item OrderLineItemView
		err = rows.Scan(
			&item.ProductID,
			&item.ProductName,
			&item.Unit,
			&item.Quantity,
			&item.CatalogPrice,
			&item.DiscountPercent,
			&item.Price,
			&item.Total,
		)
		if err != nil {
			return nil, h.classifier.Classify("scan order line item", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, h.classifier.Classify("list order line items", err)
	}

	return items, nil
}

// requireRow reports NotFound when table has no row with id. table is always
// a constant from this package.
func requireRow(tx *gorm.DB, classifier ports.ErrorClassifier, name, table string, id kernel.ID) error {
	var exists bool
	err := tx.Raw(`SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = ?)`, id.Int64()).Scan(&exists).Error
	if err != nil {
		return classifier.Classify("select "+name, err)
	}
	if !exists {
		return errs.NewObjectNotFoundError(name, id)
	}
	return nil
}
