package queries

import (
	"context"
	"database/sql"
	"errors"

	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler answers the order detail screen: the header, its line
// items priced against the catalog, and the delivery paperwork.
type GetOrderQueryHandler struct {
	db         *gorm.DB
	classifier ports.ErrorClassifier
}

func NewGetOrderQueryHandler(db *gorm.DB, classifier ports.ErrorClassifier) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, classifier: classifier}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	row := h.db.WithContext(ctx).Raw(`SELECT`+orderSummaryColumns+`,
		d.id,
		d.date_from,
		d.date_to`+orderSummaryFrom+`
	JOIN deliveries d ON d.id = o.delivery_id
	WHERE o.id = ?
	`, query.orderID.Int64()).Row()

	var details OrderDetails
	summary, err := scanOrderSummary(h.classifier, row, &details.DeliveryID, &details.DeliveryDateFrom, &details.DeliveryDateTo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetails{}, errs.NewObjectNotFoundError("order", query.orderID)
		}
		return OrderDetails{}, err
	}
	details.OrderSummary = summary

	return details, nil
}
