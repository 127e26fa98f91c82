package commands

import (
	"context"
	"log/slog"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/ports"
)

// CompleteJobCommandHandler handles job completion: the job moves to
// DeliveryCompleted, the dropoff time is recorded, payment is driven to
// Paid and the customer is notified.
type CompleteJobCommandHandler struct {
	jobRepo  ports.JobRepository
	notifier ports.NotificationPublisher
	logger   *slog.Logger
}

// NewCompleteJobCommandHandler creates a handler for job completion.
func NewCompleteJobCommandHandler(
	jobRepo ports.JobRepository,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		jobRepo:  jobRepo,
		notifier: notifier,
		logger:   logger.With("component", "complete_job_handler"),
	}
}

// Handle processes the completion command. Completing a job that never had
// a driver, or is already terminal, is a conflict. The completion
// notification is best-effort and never rolls back the persisted state.
func (h *CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.jobRepo.GetJob(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Complete(time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.jobRepo.UpdateJob(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.notifier.NotifyDeliveryCompleted(ctx, aggregate); err != nil {
		h.logger.WarnContext(ctx, "delivery completion notification failed",
			"job_id", aggregate.ID(), "error", err)
	}

	return aggregate, nil
}
