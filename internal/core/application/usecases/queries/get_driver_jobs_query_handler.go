package queries

import (
	"context"
	"sort"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/ports"
)

// GetDriverJobsQueryHandler lists a driver's jobs, newest first.
type GetDriverJobsQueryHandler struct {
	jobRepo ports.JobRepository
}

// NewGetDriverJobsQueryHandler creates a handler for driver job listings.
func NewGetDriverJobsQueryHandler(jobRepo ports.JobRepository) GetDriverJobsQueryHandler {
	return GetDriverJobsQueryHandler{jobRepo: jobRepo}
}

// Handle executes the query. A driver with no jobs yields an empty slice.
func (h GetDriverJobsQueryHandler) Handle(
	ctx context.Context, query GetDriverJobsQuery) ([]*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids, err := h.jobRepo.ListJobIDsForDriver(ctx, query.DriverID())
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
