// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, begin a unit of
// work, run the statements in order, commit. A deferred Rollback covers every
// early return.
package commands

import (
	"context"

	"wholesale/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle. Rollback is safe after
	// Commit and never fails observably.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context)
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	SupplyRepoFactory interface {
		SupplyRepository() ports.SupplyRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderUoW spans an order, its delivery and the catalog lookups.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   deliveryRepo := uow.DeliveryRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
		CatalogRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SupplyUoW spans a supply, its document and the catalog lookups.
	SupplyUoW interface {
		TxManager
		SupplyRepoFactory
		CatalogRepoFactory
	}

	SupplyUoWFactory interface {
		Create() SupplyUoW
	}

	// CatalogUoW is used by customer maintenance.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// DeliveryUoW is used by the orphan delivery sweep.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
