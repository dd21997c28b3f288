package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"

	"gorm.io/gorm"
)

type OrderDeliveryView struct {
	DeliveryID        kernel.ID
	DateFrom          time.Time
	DateTo            time.Time
	DocumentID        kernel.ID
	DocumentDate      time.Time
	SignatureBase     bool
	SignatureCustomer bool
}

type GetOrderDeliveryQueryHandler struct {
	db         *gorm.DB
	classifier ports.ErrorClassifier
}

func NewGetOrderDeliveryQueryHandler(db *gorm.DB, classifier ports.ErrorClassifier) GetOrderDeliveryQueryHandler {
	return GetOrderDeliveryQueryHandler{db: db, classifier: classifier}
}

func (h GetOrderDeliveryQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDeliveryView, error) {
	if err := query.Validate(); err != nil {
		return OrderDeliveryView{}, err
	}

	var v OrderDeliveryView
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.date_from,
			d.date_to,
			dd.id,
			dd.date,
			dd.signature_base,
			dd.signature_customer
		FROM orders o
		JOIN deliveries d ON d.id = o.delivery_id
		JOIN delivery_documents dd ON dd.id = d.document_id
		WHERE o.id = ?
	`, query.orderID.Int64()).Row().Scan(
		&v.DeliveryID,
		&v.DateFrom,
		&v.DateTo,
		&v.DocumentID,
		&v.DocumentDate,
		&v.SignatureBase,
		&v.SignatureCustomer,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDeliveryView{}, errs.NewObjectNotFoundError("order", query.orderID)
		}
		return OrderDeliveryView{}, h.classifier.Classify("select order delivery", err)
	}

	return v, nil
}
