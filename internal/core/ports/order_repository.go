// Package ports defines the persistence contracts of the wholesale domain.
// Orchestrators depend on these interfaces only; the postgres adapter
// implements them on top of one database transaction.
package ports

import (
	"context"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates. Header and line items are written
// by separate calls so the orchestrator controls statement order.
type OrderRepository interface {
	// Add inserts the order row and assigns the generated ID to the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// AddLineItems inserts every line item of a persisted order.
	AddLineItems(ctx context.Context, aggregate *order.Order) error

	// Get loads the order with its line items.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)

	// Update writes status, payment type and the recomputed total.
	Update(ctx context.Context, aggregate *order.Order) error

	// DeleteLineItems removes all line items of the order and reports how many.
	DeleteLineItems(ctx context.Context, id kernel.ID) (int64, error)

	// Delete removes the order row. Returns errs.ObjectNotFoundError when nothing was deleted.
	Delete(ctx context.Context, id kernel.ID) error
}
