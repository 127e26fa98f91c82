package commands

import (
	"context"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/core/domain/services"
	"sparrow/internal/core/ports"
)

// CreateJobCommandHandler handles the business logic for job creation.
// Prices the delivery, mints the job identifier, persists the job in
// Pending status and indexes it under the customer.
type CreateJobCommandHandler struct {
	jobRepo    ports.JobRepository
	calculator services.PriceCalculator
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
func NewCreateJobCommandHandler(
	jobRepo ports.JobRepository,
	calculator services.PriceCalculator,
) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		jobRepo:    jobRepo,
		calculator: calculator,
	}
}

// Handle processes the job creation command.
//
// The pricing pass here and a stand-alone estimate for the same inputs are
// the same computation; the only difference is that this result is
// persisted into the job.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	estimate, err := h.calculator.Calculate(
		cmd.Pickup().Coordinates(), cmd.Dropoff().Coordinates(),
		cmd.Priority(), cmd.Package().Type(), false)
	if err != nil {
		return nil, err
	}

	jobID, err := kernel.GenerateIdent(kernel.KindJob)
	if err != nil {
		return nil, err
	}

	aggregate, err := job.NewJob(job.NewJobParams{
		ID:              jobID,
		CustomerID:      cmd.CustomerID(),
		Priority:        cmd.Priority(),
		Pickup:          cmd.Pickup(),
		Dropoff:         cmd.Dropoff(),
		Package:         cmd.Package(),
		Pricing:         estimate.Pricing,
		DistanceKm:      estimate.DistanceKm,
		DurationMin:     estimate.DurationMin,
		PaymentMethodID: cmd.PaymentMethodID(),
		Notes:           cmd.Notes(),
		Now:             time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err = h.jobRepo.AddJob(ctx, aggregate); err != nil {
		return nil, err
	}
	if err = h.jobRepo.AddJobToCustomerIndex(ctx, aggregate.CustomerID(), aggregate.ID()); err != nil {
		return nil, err
	}

	return aggregate, nil
}
