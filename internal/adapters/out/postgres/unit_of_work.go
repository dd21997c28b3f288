// Package postgres provides the GORM-based Unit of Work shared by every
// command. A unit of work owns one database transaction and hands out
// repositories bound to it.
//
// Concurrency is bounded by a weighted semaphore: Begin reserves one slot
// and every exit path (Commit, Rollback, failed Begin) gives it back.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op, so the deferred call is
// always safe.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync"
	"time"

	"wholesale/internal/adapters/out/postgres/catalogrepo"
	"wholesale/internal/adapters/out/postgres/deliveryrepo"
	"wholesale/internal/adapters/out/postgres/orderrepo"
	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/adapters/out/postgres/supplyrepo"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"gorm.io/gorm"
)

const (
	DefaultMaxConcurrent  = 10
	DefaultAcquireTimeout = 5 * time.Second
)

// ErrNoActiveTransaction is returned by Commit when Begin was never called or
// the transaction has already finished.
var ErrNoActiveTransaction = errors.New("no active transaction")

type UnitOfWorkConfig struct {
	// MaxConcurrent bounds the number of open transactions.
	MaxConcurrent int64
	// AcquireTimeout bounds the wait for a free slot in Begin.
	AcquireTimeout time.Duration
}

func (c UnitOfWorkConfig) withDefaults() UnitOfWorkConfig {
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = DefaultMaxConcurrent
	}
	if c.AcquireTimeout <= 0 {
		c.AcquireTimeout = DefaultAcquireTimeout
	}
	return c
}

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.ID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one slot semaphore.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	slots  *semaphore.Weighted
	cfg    UnitOfWorkConfig
	logger *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, cfg UnitOfWorkConfig, logger *slog.Logger) *GormUnitOfWorkFactory {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:     db,
		slots:  semaphore.NewWeighted(cfg.MaxConcurrent),
		cfg:    cfg,
		logger: logger.With("component", "unit_of_work"),
	}
}

// Create produces a fresh unit of work. Instances are not safe for use by
// more than one goroutine.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	id := uuid.New()
	return &GormUnitOfWork{
		id:                id,
		db:                f.db,
		slots:             f.slots,
		acquireTimeout:    f.cfg.AcquireTimeout,
		logger:            f.logger.With("uow_id", id.String()),
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates written inside it.
type GormUnitOfWork struct {
	id             uuid.UUID
	db             *gorm.DB
	tx             *gorm.DB
	slots          *semaphore.Weighted
	acquireTimeout time.Duration
	logger         *slog.Logger

	releaseOnce       *sync.Once
	trackedAggregates []trackedAggregate
}

// Begin waits for a free slot, then starts a transaction. The transaction
// itself is not tied to ctx cancellation: statements carry ctx, while ending
// the transaction is left to Commit and Rollback so the connection is always
// returned cleanly.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	acquireCtx, cancel := context.WithTimeout(ctx, uow.acquireTimeout)
	defer cancel()

	if err := uow.slots.Acquire(acquireCtx, 1); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return errs.NewResourceExhaustedError("transaction slot", err)
	}
	uow.releaseOnce = &sync.Once{}

	tx := uow.db.WithContext(context.WithoutCancel(ctx)).Begin()
	if tx.Error != nil {
		uow.release()
		return pgerr.Classify("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.logger.DebugContext(ctx, "transaction started")
	return nil
}

// Commit applies the transaction. A cancelled ctx rolls back instead. A
// commit rejected by the server is reported as errs.CommitFailedError since
// the outcome cannot be known for sure.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return ErrNoActiveTransaction
	}

	if err := ctx.Err(); err != nil {
		uow.Rollback(ctx)
		return err
	}

	tx := uow.tx
	uow.tx = nil
	defer uow.release()

	if err := tx.Commit().Error; err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		uow.logger.ErrorContext(ctx, "commit failed", "error", err)
		return errs.NewCommitFailedError(err)
	}

	uow.logger.DebugContext(ctx, "transaction committed", "aggregates", len(uow.trackedAggregates))
	return nil
}

// Rollback discards the transaction. It never fails observably: errors are
// logged, and calls after Commit or a previous Rollback do nothing.
func (uow *GormUnitOfWork) Rollback(ctx context.Context) {
	if uow.tx == nil {
		return
	}

	tx := uow.tx
	uow.tx = nil
	defer uow.release()

	if err := tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		uow.logger.WarnContext(ctx, "rollback failed", "error", err)
		return
	}
	uow.logger.DebugContext(ctx, "transaction rolled back")
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) SupplyRepository() ports.SupplyRepository {
	return supplyrepo.NewGormSupplyRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CatalogRepository() ports.CatalogRepository {
	return catalogrepo.NewGormCatalogRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful insert or update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the transaction when one is active, the pool otherwise.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) release() {
	if uow.releaseOnce == nil {
		return
	}
	uow.releaseOnce.Do(func() {
		uow.slots.Release(1)
	})
}
