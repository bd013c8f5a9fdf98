// Package jobs provides scheduled background tasks for the offer engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to drive the two periodic operations of the distribution engine.
//
// # Available Jobs
//
// 1. DistributionJob - Runs on the distribution interval to offer every unassigned order to a courier
// 2. SweepJob - Runs on the sweep interval to expire stale offers and purge accepted ones
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers and intervals
//	jobManager := jobs.NewJobManager(distributeHandler, sweepHandler, 5*time.Second, 2*time.Second, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use "@every" interval schedules derived from configuration, so
// deployments tune the offer cadence without code changes. The sweep runs
// more frequently than distribution: an expired offer must release its
// courier before the next distribution cycle reuses the pool.
//
// # Error Handling
//
// - Distribution job ignores expected business errors (no orders, no couriers)
// - Sweep job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
