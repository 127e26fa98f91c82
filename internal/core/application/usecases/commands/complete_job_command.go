package commands

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand represents a request to mark a job delivered.
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID string

	guard guard.ConstructorGuard
}

// NewCompleteJobCommand creates a command to complete a job.
func NewCompleteJobCommand(jobID string) (CompleteJobCommand, error) {
	cmd := CompleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return CompleteJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being completed.
func (c CompleteJobCommand) JobID() string {
	return c.jobID
}

func (c *CompleteJobCommand) setJobID(jobID string) error {
	if !kernel.ValidateIdent(jobID, kernel.KindJob) {
		return errs.NewValueIsInvalidErrorWithCause("jobID",
			fmt.Errorf("%q is not a job identifier", jobID))
	}
	c.jobID = jobID
	return nil
}
