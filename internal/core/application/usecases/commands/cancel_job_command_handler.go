package commands

import (
	"context"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/ports"
)

// CancelJobCommandHandler handles job cancellation. A cancelled job keeps
// its driver reference for audit, but the job is removed from the driver's
// active-job index so the driver frees up.
type CancelJobCommandHandler struct {
	jobRepo ports.JobRepository
}

// NewCancelJobCommandHandler creates a handler for job cancellation.
func NewCancelJobCommandHandler(jobRepo ports.JobRepository) CancelJobCommandHandler {
	return CancelJobCommandHandler{jobRepo: jobRepo}
}

// Handle processes the cancellation command. Cancelling a job in a terminal
// state is a conflict and leaves the record untouched.
func (h *CancelJobCommandHandler) Handle(ctx context.Context, cmd CancelJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.jobRepo.GetJob(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(cmd.Reason(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = h.jobRepo.UpdateJob(ctx, aggregate); err != nil {
		return nil, err
	}

	if aggregate.HasDriver() {
		if err = h.jobRepo.RemoveJobFromDriverIndex(ctx, aggregate.DriverID(), aggregate.ID()); err != nil {
			return nil, err
		}
	}

	return aggregate, nil
}
