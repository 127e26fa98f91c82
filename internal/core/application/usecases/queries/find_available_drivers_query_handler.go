package queries

import (
	"context"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/core/domain/services"
	"sparrow/internal/core/ports"
	"sparrow/internal/pkg/errs"
)

// FindAvailableDriversQueryHandler ranks dispatch candidates for a job.
// Candidates come from the driver directory; drivers who already rejected
// the job are excluded from the result.
type FindAvailableDriversQueryHandler struct {
	jobRepo   ports.JobRepository
	directory ports.DriverDirectory
	matcher   services.DriverMatcher
}

// NewFindAvailableDriversQueryHandler creates a handler for candidate search.
func NewFindAvailableDriversQueryHandler(
	jobRepo ports.JobRepository,
	directory ports.DriverDirectory,
	matcher services.DriverMatcher,
) FindAvailableDriversQueryHandler {
	return FindAvailableDriversQueryHandler{
		jobRepo:   jobRepo,
		directory: directory,
		matcher:   matcher,
	}
}

// Handle executes the query.
//
// Returns:
//   - the candidate driver IDs ordered by proximity to the pickup point
//   - errs.ErrObjectNotFound for an unknown or malformed job ID,
//     errs.ErrConflict when the job already left the searchable states,
//     services.ErrNoDriversAvailable when nothing is in range
func (h FindAvailableDriversQueryHandler) Handle(
	ctx context.Context, query FindAvailableDriversQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !kernel.ValidateIdent(query.JobID(), kernel.KindJob) {
		return nil, errs.NewObjectNotFoundError("jobID", query.JobID())
	}

	aggregate, err := h.jobRepo.GetJob(ctx, query.JobID())
	if err != nil {
		return nil, err
	}

	if aggregate.Status() != job.Pending && aggregate.Status() != job.Searching {
		return nil, errs.NewConflictError("find available drivers",
			"job is no longer awaiting a driver")
	}

	pickup := aggregate.Pickup().Coordinates()
	candidates, err := h.directory.FindNearby(ctx, pickup, services.SearchRadiusKm, services.MaxCandidates)
	if err != nil {
		return nil, err
	}

	return h.matcher.Match(candidates, pickup, aggregate.RejectedByDrivers())
}
