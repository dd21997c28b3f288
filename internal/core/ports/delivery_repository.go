package ports

import (
	"context"

	"wholesale/internal/core/domain/model/delivery"
	"wholesale/internal/core/domain/model/kernel"
)

// DeliveryRepository persists delivery documents and delivery windows.
type DeliveryRepository interface {
	AddDocument(ctx context.Context, doc *delivery.Document) error
	Add(ctx context.Context, d *delivery.Delivery) error
	Get(ctx context.Context, id kernel.ID) (*delivery.Delivery, error)

	// ListUnreferenced returns up to limit deliveries no order points at.
	ListUnreferenced(ctx context.Context, limit int) ([]*delivery.Delivery, error)

	// Delete removes the given deliveries, skipping any still referenced by an order.
	Delete(ctx context.Context, ids ...kernel.ID) (int64, error)

	// DeleteDocuments removes the given documents, skipping any still referenced by a delivery.
	DeleteDocuments(ctx context.Context, ids ...kernel.ID) (int64, error)
}
