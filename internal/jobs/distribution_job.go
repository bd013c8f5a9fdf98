package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DistributionJob runs the distribution cycle on a fixed interval,
// offering every unassigned order to a courier that has not seen it yet.
type DistributionJob struct {
	handler  commands.DistributeOrdersCommandHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDistributionJob creates a new job for order distribution.
func NewDistributionJob(
	handler commands.DistributeOrdersCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *DistributionJob {
	return &DistributionJob{
		handler:  handler,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "distribution_job"),
	}
}

// Start begins the distribution job on its configured interval.
func (j *DistributionJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()
		cmd := commands.NewDistributeOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty system is the normal idle state, not a failure.
			if !errors.Is(err, commands.ErrNoOrdersToDistribute) && !errors.Is(err, commands.ErrNoActiveCouriers) {
				j.logger.ErrorContext(ctx, "Distribution job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Distribution job started", "interval", j.interval.String())
	return nil
}

// Stop stops the distribution job.
func (j *DistributionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Distribution job stopped")
}
