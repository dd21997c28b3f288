package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled job together.
type JobManager struct {
	totalsAuditJob *TotalsAuditJob
	orphanSweepJob *OrphanDeliverySweepJob
}

type Schedules struct {
	TotalsAudit      string
	OrphanSweep      string
	OrphanSweepBatch int
}

func NewJobManager(
	driftFinder totalsDriftFinder,
	sweeper orphanDeliverySweeper,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		totalsAuditJob: NewTotalsAuditJob(driftFinder, schedules.TotalsAudit, logger),
		orphanSweepJob: NewOrphanDeliverySweepJob(sweeper, schedules.OrphanSweep, schedules.OrphanSweepBatch, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.totalsAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start totals audit job: %w", err)
	}

	if err := jm.orphanSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.totalsAuditJob.Stop()
		return fmt.Errorf("failed to start orphan delivery sweep job: %w", err)
	}

	return nil
}

// StopAll stops all jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.orphanSweepJob.Stop()
	jm.totalsAuditJob.Stop()
}
