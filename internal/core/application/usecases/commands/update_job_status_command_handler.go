package commands

import (
	"context"
	"log/slog"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/ports"
	"sparrow/internal/pkg/errs"
)

// UpdateJobStatusCommandHandler routes a requested status onto the correct
// aggregate transition: assignment, a single forward step along the
// delivery chain, or one of the terminal failure outcomes. Arbitrary jumps
// are rejected by the aggregate with a conflict.
type UpdateJobStatusCommandHandler struct {
	jobRepo  ports.JobRepository
	notifier ports.NotificationPublisher
	logger   *slog.Logger
}

// NewUpdateJobStatusCommandHandler creates a handler for status updates.
func NewUpdateJobStatusCommandHandler(
	jobRepo ports.JobRepository,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) UpdateJobStatusCommandHandler {
	return UpdateJobStatusCommandHandler{
		jobRepo:  jobRepo,
		notifier: notifier,
		logger:   logger.With("component", "update_job_status_handler"),
	}
}

// Handle processes the status update command.
//
// The record is re-read immediately before mutating; the conditional write
// surfaces concurrent mutations as a version conflict instead of silently
// overwriting them. Milestone notifications to the customer are best-effort
// and never roll back the persisted transition.
func (h *UpdateJobStatusCommandHandler) Handle(ctx context.Context, cmd UpdateJobStatusCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.jobRepo.GetJob(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	hadDriver := aggregate.HasDriver()

	switch cmd.Status() {
	case job.DriverAssigned:
		if cmd.DriverID() == "" {
			return nil, errs.NewValueIsRequiredError("driverID")
		}
		err = aggregate.AssignDriver(cmd.DriverID(), now)
	case job.Cancelled:
		err = aggregate.Cancel("", now)
	case job.Failed:
		err = aggregate.Fail("", now)
	case job.Expired:
		err = aggregate.Expire(now)
	default:
		err = aggregate.Advance(cmd.Status(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = h.jobRepo.UpdateJob(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = h.applyIndexSideEffects(ctx, aggregate, hadDriver); err != nil {
		return nil, err
	}

	h.notifyMilestone(ctx, aggregate)

	return aggregate, nil
}

// applyIndexSideEffects keeps the driver index in step with the transition:
// assignment adds the job to the driver's list, cancellation removes it.
func (h *UpdateJobStatusCommandHandler) applyIndexSideEffects(
	ctx context.Context, aggregate *job.Job, hadDriver bool,
) error {
	switch aggregate.Status() {
	case job.DriverAssigned:
		if !hadDriver {
			return h.jobRepo.AddJobToDriverIndex(ctx, aggregate.DriverID(), aggregate.ID())
		}
	case job.Cancelled:
		if aggregate.HasDriver() {
			return h.jobRepo.RemoveJobFromDriverIndex(ctx, aggregate.DriverID(), aggregate.ID())
		}
	}
	return nil
}

func (h *UpdateJobStatusCommandHandler) notifyMilestone(ctx context.Context, aggregate *job.Job) {
	var err error
	switch aggregate.Status() {
	case job.DriverAssigned:
		err = h.notifier.NotifyDriverAssigned(ctx, aggregate, aggregate.DriverID())
	case job.DeliveryCompleted:
		err = h.notifier.NotifyDeliveryCompleted(ctx, aggregate)
	case job.Cancelled, job.Failed, job.Expired:
		// Terminal failure outcomes are not customer milestones.
	default:
		err = h.notifier.NotifyStatusMilestone(ctx, aggregate, aggregate.Status())
	}

	if err != nil {
		h.logger.WarnContext(ctx, "status milestone notification failed",
			"job_id", aggregate.ID(), "status", aggregate.Status().String(), "error", err)
	}
}
