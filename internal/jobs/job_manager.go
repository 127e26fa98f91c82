package jobs

import (
	"fmt"
	"log/slog"

	"sparrow/internal/core/application/usecases/commands"
	"sparrow/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	expiryJob *ExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	jobRepo ports.JobRepository,
	expireHandler commands.ExpireJobCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		expiryJob: NewExpiryJob(jobRepo, expireHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.expiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.expiryJob.Stop()
}
