package queries

import (
	"context"

	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/ports"

	"gorm.io/gorm"
)

const (
	orderSummaryColumns = `
		o.id,
		o.date,
		o.status,
		o.payment_type,
		o.total_sum,
		c.id,
		concat_ws(' ', c.last_name, c.first_name, NULLIF(c.middle_name, '')),
		m.id,
		concat_ws(' ', m.last_name, m.first_name)`
	orderSummaryFrom = `
	FROM orders o
	JOIN customers c ON c.id = o.customer_id
	JOIN managers m ON m.id = o.manager_id`
)

// ListOrdersQueryHandler reads order summaries straight from the tables.
type ListOrdersQueryHandler struct {
	db         *gorm.DB
	classifier ports.ErrorClassifier
}

func NewListOrdersQueryHandler(db *gorm.DB, classifier ports.ErrorClassifier) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, classifier: classifier}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+orderSummaryColumns+orderSummaryFrom+`
		WHERE (? = 0 OR o.status = ?)
		ORDER BY o.date DESC, o.id DESC
		LIMIT ? OFFSET ?
	`, int(query.status), int(query.status), query.limit, query.offset).Rows()
	if err != nil {
		return nil, h.classifier.Classify("list orders", err)
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummary(h.classifier, rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, h.classifier.Classify("list orders", err)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderSummary(classifier ports.ErrorClassifier, row rowScanner, extra ...any) (OrderSummary, error) {
	var s OrderSummary
	var status, paymentType int
	dest := []any{
		&s.ID,
		&s.Date,
		&status,
		&paymentType,
		&s.TotalSum,
		&s.CustomerID,
		&s.CustomerName,
		&s.ManagerID,
		&s.ManagerName,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return OrderSummary{}, classifier.Classify("scan order", err)
	}
	s.Status = order.Status(status)
	s.PaymentType = order.PaymentType(paymentType)
	return s, nil
}
