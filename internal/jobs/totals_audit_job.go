package jobs

import (
	"context"
	"log/slog"
	"time"

	"wholesale/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const (
	DefaultTotalsAuditSchedule = "0 */15 * * * *"
	totalsAuditLimit           = 100
	runTimeout                 = time.Minute
)

type totalsDriftFinder interface {
	Handle(ctx context.Context, query queries.FindTotalsDriftQuery) ([]queries.TotalsDrift, error)
}

// TotalsAuditJob reports orders and supplies whose stored total no longer
// matches their line items. It never rewrites totals.
type TotalsAuditJob struct {
	handler  totalsDriftFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewTotalsAuditJob(handler totalsDriftFinder, schedule string, logger *slog.Logger) *TotalsAuditJob {
	if schedule == "" {
		schedule = DefaultTotalsAuditSchedule
	}
	return &TotalsAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "totals_audit_job"),
	}
}

func (j *TotalsAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Totals audit job started", "schedule", j.schedule)
	return nil
}

func (j *TotalsAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Totals audit job stopped")
}

func (j *TotalsAuditJob) run() {
	j.audit(context.Background())
}

// audit returns the number of drifted aggregates it found.
func (j *TotalsAuditJob) audit(parent context.Context) int {
	ctx, cancel := context.WithTimeout(parent, runTimeout)
	defer cancel()

	query, err := queries.NewFindTotalsDriftQuery(totalsAuditLimit)
	if err != nil {
		j.logger.ErrorContext(ctx, "Totals audit query is invalid", "error", err)
		return 0
	}

	drift, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Totals audit failed", "error", err)
		return 0
	}

	for _, d := range drift {
		j.logger.WarnContext(ctx, "Stored total differs from line items",
			"kind", d.Kind,
			"id", d.ID.Int64(),
			"stored", d.Stored.String(),
			"computed", d.Computed.String(),
		)
	}
	return len(drift)
}
