package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	distributionJob *DistributionJob
	sweepJob        *SweepJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers and intervals as dependencies to wire up the
// job execution.
func NewJobManager(
	distributeHandler commands.DistributeOrdersCommandHandler,
	sweepHandler commands.SweepOffersCommandHandler,
	distributionInterval time.Duration,
	sweepInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		distributionJob: NewDistributionJob(distributeHandler, distributionInterval, logger),
		sweepJob:        NewSweepJob(sweepHandler, sweepInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.distributionJob.Start(); err != nil {
		return fmt.Errorf("failed to start distribution job: %w", err)
	}

	if err := jm.sweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.distributionJob.Stop()
		return fmt.Errorf("failed to start sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sweepJob.Stop()
	jm.distributionJob.Stop()
}
