package commands

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand represents a request to cancel a job. The reason is
// optional and recorded on the job when present.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID  string
	reason string

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a command to cancel a job.
func NewCancelJobCommand(jobID, reason string) (CancelJobCommand, error) {
	cmd := CancelJobCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return CancelJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being cancelled.
func (c CancelJobCommand) JobID() string {
	return c.jobID
}

// Reason returns why the job is being cancelled, possibly empty.
func (c CancelJobCommand) Reason() string {
	return c.reason
}

func (c *CancelJobCommand) setJobID(jobID string) error {
	if !kernel.ValidateIdent(jobID, kernel.KindJob) {
		return errs.NewValueIsInvalidErrorWithCause("jobID",
			fmt.Errorf("%q is not a job identifier", jobID))
	}
	c.jobID = jobID
	return nil
}
