package commands

import (
	"context"
	"log/slog"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/ports"
)

// AssignDriverCommandHandler handles driver assignment.
//
// The read-mutate-write sequence is protected by the repository's
// conditional write: if another caller assigned the job between our read
// and write, UpdateJob fails with a version conflict and no driver index
// entry is created. The aggregate's "driver already set" rule catches the
// same race when the competing write landed before our read.
type AssignDriverCommandHandler struct {
	jobRepo  ports.JobRepository
	notifier ports.NotificationPublisher
	logger   *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for driver assignment.
func NewAssignDriverCommandHandler(
	jobRepo ports.JobRepository,
	notifier ports.NotificationPublisher,
	logger *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		jobRepo:  jobRepo,
		notifier: notifier,
		logger:   logger.With("component", "assign_driver_handler"),
	}
}

// Handle processes the assignment command.
//
// Side effects on success: the job moves to DriverAssigned with the
// acceptance time recorded, the job appears in the driver's active-job
// index, and the driver is notified. The notification is best-effort: its
// failure is logged and never undoes the persisted assignment.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.jobRepo.GetJob(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AssignDriver(cmd.DriverID(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.jobRepo.UpdateJob(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = h.jobRepo.AddJobToDriverIndex(ctx, cmd.DriverID(), aggregate.ID()); err != nil {
		return nil, err
	}

	if err = h.notifier.NotifyDriverAssigned(ctx, aggregate, cmd.DriverID()); err != nil {
		h.logger.WarnContext(ctx, "driver assignment notification failed",
			"job_id", aggregate.ID(), "driver_id", cmd.DriverID(), "error", err)
	}

	return aggregate, nil
}
