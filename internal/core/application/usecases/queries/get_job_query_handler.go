package queries

import (
	"context"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/core/ports"
	"sparrow/internal/pkg/errs"
)

// GetJobQueryHandler retrieves one job through the repository contract.
type GetJobQueryHandler struct {
	jobRepo ports.JobRepository
}

// NewGetJobQueryHandler creates a handler for single-job retrieval.
func NewGetJobQueryHandler(jobRepo ports.JobRepository) GetJobQueryHandler {
	return GetJobQueryHandler{jobRepo: jobRepo}
}

// Handle executes the query. A structurally invalid identifier short-
// circuits to not-found without touching the repository.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !kernel.ValidateIdent(query.JobID(), kernel.KindJob) {
		return nil, errs.NewObjectNotFoundError("jobID", query.JobID())
	}

	return h.jobRepo.GetJob(ctx, query.JobID())
}
