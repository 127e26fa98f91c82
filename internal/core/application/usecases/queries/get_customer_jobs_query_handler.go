package queries

import (
	"context"
	"sort"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/ports"
)

// GetCustomerJobsQueryHandler lists a customer's jobs, newest first.
type GetCustomerJobsQueryHandler struct {
	jobRepo ports.JobRepository
}

// NewGetCustomerJobsQueryHandler creates a handler for customer job listings.
func NewGetCustomerJobsQueryHandler(jobRepo ports.JobRepository) GetCustomerJobsQueryHandler {
	return GetCustomerJobsQueryHandler{jobRepo: jobRepo}
}

// Handle executes the query. A customer with no jobs yields an empty slice.
func (h GetCustomerJobsQueryHandler) Handle(
	ctx context.Context, query GetCustomerJobsQuery) ([]*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids, err := h.jobRepo.ListJobIDsForCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(ids))
	for _, id := range ids {
		aggregate, err := h.jobRepo.GetJob(ctx, id)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, aggregate)
	}

	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt().After(jobs[j].CreatedAt())
	})

	return jobs, nil
}
