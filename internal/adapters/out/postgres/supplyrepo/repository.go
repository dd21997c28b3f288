package supplyrepo

import (
	"context"
	"errors"

	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSupplyRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormSupplyRepository(db *gorm.DB, tracker aggregateTracker) *GormSupplyRepository {
	return &GormSupplyRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSupplyRepository) AddDocument(ctx context.Context, doc *supply.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	dto := DocumentDTO{Date: doc.Date()}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("insert supply document", err)
	}
	return doc.AssignID(kernel.ID(dto.ID))
}

func (r *GormSupplyRepository) Add(ctx context.Context, aggregate *supply.Supply) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Classify("insert supply", err)
	}
	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSupplyRepository) AddLineItems(ctx context.Context, aggregate *supply.Supply) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := aggregate.ID().Validate("supplyId"); err != nil {
		return err
	}

	dtos := lineItemsFromDomain(aggregate)
	if len(dtos) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dtos).Error; err != nil {
		return pgerr.Classify("insert supply line items", err)
	}
	return nil
}

func (r *GormSupplyRepository) Get(ctx context.Context, id kernel.ID) (*supply.Supply, error) {
	return r.get(ctx, id, false)
}

func (r *GormSupplyRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*supply.Supply, error) {
	return r.get(ctx, id, true)
}

func (r *GormSupplyRepository) Update(ctx context.Context, aggregate *supply.Supply) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&SupplyDTO{}).Where("id = ?", aggregate.ID().Int64()).Updates(map[string]any{
		"status":     int(aggregate.Status()),
		"total_cost": aggregate.TotalCost(),
	})
	if result.Error != nil {
		return pgerr.Classify("update supply", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("supply", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSupplyRepository) DeleteLineItems(ctx context.Context, id kernel.ID) (int64, error) {
	result := r.db.WithContext(ctx).Where("supply_id = ?", id.Int64()).Delete(&LineItemDTO{})
	if result.Error != nil {
		return 0, pgerr.Classify("delete supply line items", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormSupplyRepository) Delete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Delete(&SupplyDTO{}, id.Int64())
	if result.Error != nil {
		return pgerr.Classify("delete supply", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("supply", id)
	}
	return nil
}

// DeleteDocument removes the document unless another supply still points at it.
func (r *GormSupplyRepository) DeleteDocument(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id.Int64()).
		Where("NOT EXISTS (SELECT 1 FROM supplies s WHERE s.document_id = supply_documents.id)").
		Delete(&DocumentDTO{})
	if result.Error != nil {
		return pgerr.Classify("delete supply document", result.Error)
	}
	return nil
}

func (r *GormSupplyRepository) get(ctx context.Context, id kernel.ID, forUpdate bool) (*supply.Supply, error) {
	if err := id.Validate("supplyId"); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto SupplyDTO
	err := tx.Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("product_id")
	}).First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supply", id)
		}
		return nil, pgerr.Classify("select supply", err)
	}

	return toDomain(dto)
}
