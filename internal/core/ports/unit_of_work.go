package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories obtained after Begin
// run inside that transaction.
type UnitOfWork interface {
	// Begin reserves a connection slot and starts a transaction.
	// Fails with errs.ResourceExhaustedError when no slot frees up in time.
	Begin(ctx context.Context) error

	// Commit applies the transaction and releases the slot.
	// Fails with errs.CommitFailedError when the outcome is unknown.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and releases the slot. It is safe to
	// call after Commit or more than once; failures are logged, not returned.
	Rollback(ctx context.Context)

	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	SupplyRepository() SupplyRepository
	CatalogRepository() CatalogRepository
}
