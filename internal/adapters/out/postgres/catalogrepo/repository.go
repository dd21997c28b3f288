package catalogrepo

import (
	"context"

	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCatalogRepository) GetProducts(ctx context.Context, ids []kernel.ID) (map[kernel.ID]catalog.Product, error) {
	products := make(map[kernel.ID]catalog.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	raw := make([]int64, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Int64())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Where("id = ANY(?)", pq.Array(raw)).Find(&dtos).Error; err != nil {
		return nil, pgerr.Classify("select products", err)
	}

	for _, dto := range dtos {
		products[kernel.ID(dto.ID)] = productToDomain(dto)
	}
	return products, nil
}

func (r *GormCatalogRepository) CustomerExists(ctx context.Context, id kernel.ID) (bool, error) {
	return r.exists(ctx, CustomerDTO{}.TableName(), id)
}

func (r *GormCatalogRepository) ManagerExists(ctx context.Context, id kernel.ID) (bool, error) {
	return r.exists(ctx, ManagerDTO{}.TableName(), id)
}

func (r *GormCatalogRepository) SupplierExists(ctx context.Context, id kernel.ID) (bool, error) {
	return r.exists(ctx, SupplierDTO{}.TableName(), id)
}

func (r *GormCatalogRepository) AddCustomer(ctx context.Context, customer *catalog.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(customer)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Classify("insert customer", err)
	}
	if err := customer.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(customer.ID(), customer)
	return nil
}

func (r *GormCatalogRepository) UpdateCustomer(ctx context.Context, customer *catalog.Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(customer)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"first_name":  dto.FirstName,
		"last_name":   dto.LastName,
		"middle_name": dto.MiddleName,
		"phone":       dto.Phone,
		"email":       dto.Email,
		"address":     dto.Address,
	})
	if result.Error != nil {
		return pgerr.Classify("update customer", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", customer.ID())
	}

	r.tracker.TrackAggregate(customer.ID(), customer)
	return nil
}

func (r *GormCatalogRepository) DeleteCustomer(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, id.Int64())
	if result.Error != nil {
		return pgerr.Classify("delete customer", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", id)
	}
	return nil
}

func (r *GormCatalogRepository) exists(ctx context.Context, table string, id kernel.ID) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	var found bool
	err := r.db.WithContext(ctx).
		Raw("SELECT EXISTS (SELECT 1 FROM "+table+" WHERE id = ?)", id.Int64()).
		Scan(&found).Error
	if err != nil {
		return false, pgerr.Classify("select "+table, err)
	}
	return found, nil
}
