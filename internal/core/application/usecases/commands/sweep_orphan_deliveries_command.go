package commands

import (
	"context"
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

var ErrSweepOrphanDeliveriesCommandIsNotConstructed = errors.New(
	"SweepOrphanDeliveriesCommand must be created via NewSweepOrphanDeliveriesCommand constructor",
)

// SweepOrphanDeliveriesCommand removes up to BatchSize deliveries that no
// order references, together with their documents.
type SweepOrphanDeliveriesCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewSweepOrphanDeliveriesCommand(batchSize int) (SweepOrphanDeliveriesCommand, error) {
	if batchSize <= 0 {
		return SweepOrphanDeliveriesCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}
	return SweepOrphanDeliveriesCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c SweepOrphanDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrSweepOrphanDeliveriesCommandIsNotConstructed)
}

func (c SweepOrphanDeliveriesCommand) BatchSize() int {
	return c.batchSize
}

type SweepOrphanDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewSweepOrphanDeliveriesCommandHandler(uowFactory DeliveryUoWFactory) SweepOrphanDeliveriesCommandHandler {
	return SweepOrphanDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of deliveries removed.
func (h *SweepOrphanDeliveriesCommandHandler) Handle(ctx context.Context, cmd SweepOrphanDeliveriesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback(ctx)

	deliveryRepo := uow.DeliveryRepository()
	orphans, err := deliveryRepo.ListUnreferenced(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	deliveryIDs := make([]kernel.ID, 0, len(orphans))
	documentIDs := make([]kernel.ID, 0, len(orphans))
	for _, d := range orphans {
		deliveryIDs = append(deliveryIDs, d.ID())
		documentIDs = append(documentIDs, d.DocumentID())
	}

	deleted, err := deliveryRepo.Delete(ctx, deliveryIDs...)
	if err != nil {
		return 0, err
	}
	if _, err = deliveryRepo.DeleteDocuments(ctx, documentIDs...); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return deleted, nil
}
