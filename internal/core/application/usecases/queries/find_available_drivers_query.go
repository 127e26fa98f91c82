package queries

import (
	"errors"

	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrFindAvailableDriversQueryIsNotConstructed = errors.New(
	"FindAvailableDriversQuery must be created via NewFindAvailableDriversQuery constructor",
)

// FindAvailableDriversQuery asks for the ranked dispatch candidates around a
// job's pickup point. The job ID is kept raw so a malformed value resolves to
// not-found in the handler rather than a validation error here.
type FindAvailableDriversQuery struct {
	jobID string

	guard guard.ConstructorGuard
}

// NewFindAvailableDriversQuery creates a candidate-search query.
func NewFindAvailableDriversQuery(jobID string) (FindAvailableDriversQuery, error) {
	if jobID == "" {
		return FindAvailableDriversQuery{}, errs.NewValueIsRequiredError("jobID")
	}

	return FindAvailableDriversQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FindAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrFindAvailableDriversQueryIsNotConstructed)
}

// JobID returns the job whose pickup anchors the search.
func (q FindAvailableDriversQuery) JobID() string {
	return q.jobID
}
