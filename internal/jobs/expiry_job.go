package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sparrow/internal/core/application/usecases/commands"
	"sparrow/internal/core/ports"
	"sparrow/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ExpiryJob scans for jobs whose acceptance window closed without a driver
// and expires them. Runs every minute; the expire command re-checks
// eligibility so a job accepted after the scan is left alone.
type ExpiryJob struct {
	jobRepo ports.JobRepository
	handler commands.ExpireJobCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExpiryJob creates the acceptance-window expiry job.
func NewExpiryJob(
	jobRepo ports.JobRepository,
	handler commands.ExpireJobCommandHandler,
	logger *slog.Logger,
) *ExpiryJob {
	return &ExpiryJob{
		jobRepo: jobRepo,
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "expiry_job"),
	}
}

// Start begins the expiry job to run every minute.
func (j *ExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Expiry job started (running every minute)")
	return nil
}

// Stop stops the expiry job.
func (j *ExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Expiry job stopped")
}

func (j *ExpiryJob) runOnce(ctx context.Context) {
	due, err := j.jobRepo.ListJobIDsDueForExpiry(ctx, time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Expiry scan failed", "error", err)
		return
	}

	for _, id := range due {
		cmd, err := commands.NewExpireJobCommand(id)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid job ID in expiry scan", "job_id", id, "error", err)
			continue
		}

		if _, err := j.handler.Handle(ctx, cmd); err != nil {
			// A job accepted or finished between the scan and now is
			// an expected race, not a failure.
			if errors.Is(err, commands.ErrJobNotDue) ||
				errors.Is(err, errs.ErrConflict) ||
				errors.Is(err, errs.ErrVersionConflict) {
				continue
			}
			j.logger.ErrorContext(ctx, "Job expiry failed", "job_id", id, "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Job expired", "job_id", id)
	}
}
