package queries

import (
	"context"

	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/core/ports"

	"gorm.io/gorm"
)

type ListSuppliesQueryHandler struct {
	db         *gorm.DB
	classifier ports.ErrorClassifier
}

func NewListSuppliesQueryHandler(db *gorm.DB, classifier ports.ErrorClassifier) ListSuppliesQueryHandler {
	return ListSuppliesQueryHandler{db: db, classifier: classifier}
}

func (h ListSuppliesQueryHandler) Handle(ctx context.Context, query ListSuppliesQuery) ([]SupplySummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.supplier_id,
			sp.name,
			s.document_id,
			s.date,
			s.status,
			s.total_cost
		FROM supplies s
		JOIN suppliers sp ON sp.id = s.supplier_id
		WHERE (? = 0 OR s.status = ?)
		ORDER BY s.date DESC, s.id DESC
		LIMIT ? OFFSET ?
	`, int(query.status), int(query.status), query.limit, query.offset).Rows()
	if err != nil {
		return nil, h.classifier.Classify("list supplies", err)
	}
	defer rows.Close()

	supplies := make([]SupplySummary, 0)
	for rows.Next() {
		var s SupplySummary
		var status int
		err = rows.Scan(
			&s.ID,
			&s.SupplierID,
			&s.SupplierName,
			&s.DocumentID,
			&s.Date,
			&status,
			&s.TotalCost,
		)
		if err != nil {
			return nil, h.classifier.Classify("scan supply", err)
		}
		s.Status = supply.Status(status)
		supplies = append(supplies, s)
	}
	if err = rows.Err(); err != nil {
		return nil, h.classifier.Classify("list supplies", err)
	}

	return supplies, nil
}

type GetSupplyLineItemsQueryHandler struct {
	db         *gorm.DB
	classifier ports.ErrorClassifier
}

func NewGetSupplyLineItemsQueryHandler(db *gorm.DB, classifier ports.ErrorClassifier) GetSupplyLineItemsQueryHandler {
	return GetSupplyLineItemsQueryHandler{db: db, classifier: classifier}
}

func (h GetSupplyLineItemsQueryHandler) Handle(ctx context.Context, query GetSupplyQuery) ([]SupplyLineItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx)
	if err := requireRow(tx, h.classifier, "supply", "supplies", query.supplyID); err != nil {
		return nil, err
	}

	rows, err := tx.Raw(`
		SELECT
			li.product_id,
			p.name,
			p.unit,
			li.quantity,
			li.price,
			li.price * li.quantity
		FROM supply_line_items li
		JOIN products p ON p.id = li.product_id
		WHERE li.supply_id = ?
		ORDER BY li.product_id
	`, query.supplyID.Int64()).Rows()
	if err != nil {
		return nil, h.classifier.Classify("list supply line items", err)
	}
	defer rows.Close()

	items := make([]SupplyLineItemView, 0)
	for rows.Next() {
		var item SupplyLineItemView
		if err = rows.Scan(&item.ProductID, &item.ProductName, &item.Unit, &item.Quantity, &item.Price, &item.Total); err != nil {
			return nil, h.classifier.Classify("scan supply line item", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, h.classifier.Classify("list supply line items", err)
	}

	return items, nil
}
