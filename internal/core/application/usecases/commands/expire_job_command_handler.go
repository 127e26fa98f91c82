package commands

import (
	"context"
	"errors"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/ports"
)

// ExpireJobCommandHandler moves a job whose acceptance deadline passed to
// Expired. The deadline is re-checked against the freshly read record so a
// job assigned between the scan and this command survives.
type ExpireJobCommandHandler struct {
	jobRepo ports.JobRepository
}

// NewExpireJobCommandHandler creates a handler for job expiry.
func NewExpireJobCommandHandler(jobRepo ports.JobRepository) ExpireJobCommandHandler {
	return ExpireJobCommandHandler{jobRepo: jobRepo}
}

// ErrJobNotDue is returned when the job is no longer eligible for expiry,
// either because a driver accepted it or its deadline has not passed.
var ErrJobNotDue = errors.New("job is not due for expiry")

// Handle processes the expiry command.
func (h *ExpireJobCommandHandler) Handle(ctx context.Context, cmd ExpireJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.jobRepo.GetJob(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !aggregate.IsDueForExpiry(now) {
		return nil, ErrJobNotDue
	}

	if err = aggregate.Expire(now); err != nil {
		return nil, err
	}

	if err = h.jobRepo.UpdateJob(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}
