package jobs

import (
	"context"
	"log/slog"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const (
	DefaultOrphanSweepSchedule = "0 30 3 * * *"
	DefaultOrphanSweepBatch    = 500
)

type orphanDeliverySweeper interface {
	Handle(ctx context.Context, cmd commands.SweepOrphanDeliveriesCommand) (int64, error)
}

// OrphanDeliverySweepJob removes deliveries and delivery documents that no
// order references any more. Rows like that were left behind by the legacy
// back office, which deleted orders without their deliveries.
type OrphanDeliverySweepJob struct {
	handler   orphanDeliverySweeper
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOrphanDeliverySweepJob(
	handler orphanDeliverySweeper,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *OrphanDeliverySweepJob {
	if schedule == "" {
		schedule = DefaultOrphanSweepSchedule
	}
	if batchSize <= 0 {
		batchSize = DefaultOrphanSweepBatch
	}
	return &OrphanDeliverySweepJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "orphan_delivery_sweep_job"),
	}
}

func (j *OrphanDeliverySweepJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Orphan delivery sweep job started", "schedule", j.schedule, "batch_size", j.batchSize)
	return nil
}

func (j *OrphanDeliverySweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Orphan delivery sweep job stopped")
}

func (j *OrphanDeliverySweepJob) run() {
	j.sweep(context.Background())
}

// sweep deletes batches until one comes back short, so a large backlog is
// cleared in a single run without holding one long transaction.
func (j *OrphanDeliverySweepJob) sweep(parent context.Context) int64 {
	ctx, cancel := context.WithTimeout(parent, runTimeout)
	defer cancel()

	cmd, err := commands.NewSweepOrphanDeliveriesCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Orphan sweep command is invalid", "error", err)
		return 0
	}

	var total int64
	for {
		n, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			if errs.IsRetryable(err) {
				j.logger.WarnContext(ctx, "Orphan sweep interrupted, next run will continue", "error", err)
			} else {
				j.logger.ErrorContext(ctx, "Orphan sweep failed", "error", err)
			}
			break
		}
		total += n
		if n < int64(j.batchSize) {
			break
		}
	}

	if total > 0 {
		j.logger.InfoContext(ctx, "Orphan deliveries removed", "count", total)
	}
	return total
}
