package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SweepJob runs the offer expiration sweep on a fixed interval, expiring
// pending offers past their TTL and purging accepted ones. The sweep runs
// more often than distribution so couriers are released promptly.
type SweepJob struct {
	handler  commands.SweepOffersCommandHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSweepJob creates a new job for offer expiration.
func NewSweepJob(
	handler commands.SweepOffersCommandHandler,
	interval time.Duration,
	logger *slog.Logger,
) *SweepJob {
	return &SweepJob{
		handler:  handler,
		interval: interval,
		cron:     cron.New(),
		logger:   logger.With("component", "sweep_job"),
	}
}

// Start begins the sweep job on its configured interval.
func (j *SweepJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %s", j.interval), func() {
		ctx := context.Background()
		cmd := commands.NewSweepOffersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Sweep job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Sweep job started", "interval", j.interval.String())
	return nil
}

// Stop stops the sweep job.
func (j *SweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Sweep job stopped")
}
