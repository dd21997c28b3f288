// Package deliveryrepo persists delivery documents and delivery windows.
//
// Deletes are guarded: a delivery still referenced by an order, or a document
// still referenced by a delivery, is skipped rather than failing the whole
// statement.
package deliveryrepo

import (
	"context"
	"errors"

	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/core/domain/model/delivery"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) AddDocument(ctx context.Context, doc *delivery.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(doc)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("insert delivery document", err)
	}
	return doc.AssignID(kernel.ID(dto.ID))
}

func (r *GormDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit("Document").Create(&dto).Error; err != nil {
		return pgerr.Classify("insert delivery", err)
	}
	if err := d.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(d.ID(), d)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.ID) (*delivery.Delivery, error) {
	if err := id.Validate("deliveryId"); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id)
		}
		return nil, pgerr.Classify("select delivery", err)
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) ListUnreferenced(ctx context.Context, limit int) ([]*delivery.Delivery, error) {
	if limit <= 0 {
		return nil, nil
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM orders o WHERE o.delivery_id = deliveries.id)").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerr.Classify("select unreferenced deliveries", err)
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

func (r *GormDeliveryRepository) Delete(ctx context.Context, ids ...kernel.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("id = ANY(?)", pq.Array(rawIDs(ids))).
		Where("NOT EXISTS (SELECT 1 FROM orders o WHERE o.delivery_id = deliveries.id)").
		Delete(&DeliveryDTO{})
	if result.Error != nil {
		return 0, pgerr.Classify("delete deliveries", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormDeliveryRepository) DeleteDocuments(ctx context.Context, ids ...kernel.ID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Where("id = ANY(?)", pq.Array(rawIDs(ids))).
		Where("NOT EXISTS (SELECT 1 FROM deliveries d WHERE d.document_id = delivery_documents.id)").
		Delete(&DocumentDTO{})
	if result.Error != nil {
		return 0, pgerr.Classify("delete delivery documents", result.Error)
	}
	return result.RowsAffected, nil
}

func rawIDs(ids []kernel.ID) []int64 {
	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}
	return raw
}
