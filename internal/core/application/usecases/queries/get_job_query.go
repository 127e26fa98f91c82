package queries

import (
	"errors"

	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery retrieves a single job by its identifier.
//
// The identifier is deliberately not format-gated at construction: a
// structurally invalid ID resolves to not-found in the handler, without a
// repository lookup, so callers cannot distinguish malformed from absent.
type GetJobQuery struct {
	jobID string

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a query for one job.
func NewGetJobQuery(jobID string) (GetJobQuery, error) {
	if jobID == "" {
		return GetJobQuery{}, errs.NewValueIsRequiredError("jobID")
	}

	return GetJobQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

// JobID returns the requested job identifier.
func (q GetJobQuery) JobID() string {
	return q.jobID
}
