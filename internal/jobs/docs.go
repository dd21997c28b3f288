// Package jobs provides scheduled background tasks for the wholesale back office.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds)
// and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(driftHandler, sweepHandler, schedules, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// TotalsAuditJob runs every 15 minutes by default and logs each order or supply
// whose stored total differs from the sum of its line items.
//
// OrphanDeliverySweepJob runs nightly by default and deletes deliveries and
// delivery documents no order points at, batch by batch.
//
// # Error Handling
//
// Neither job retries inside a run. Transient store failures are logged as
// warnings and picked up by the next scheduled run.
package jobs
