package ports

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/supply"
)

type SupplyRepository interface {
	AddDocument(ctx context.Context, doc *supply.Document) error
	Add(ctx context.Context, aggregate *supply.Supply) error
	AddLineItems(ctx context.Context, aggregate *supply.Supply) error
	Get(ctx context.Context, id kernel.ID) (*supply.Supply, error)
	GetForUpdate(ctx context.Context, id kernel.ID) (*supply.Supply, error)
	Update(ctx context.Context, aggregate *supply.Supply) error
	DeleteLineItems(ctx context.Context, id kernel.ID) (int64, error)
	Delete(ctx context.Context, id kernel.ID) error
	DeleteDocument(ctx context.Context, id kernel.ID) error
}
