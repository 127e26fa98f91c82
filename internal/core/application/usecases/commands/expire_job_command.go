package commands

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrExpireJobCommandIsNotConstructed = errors.New(
	"ExpireJobCommand must be created via NewExpireJobCommand constructor",
)

// ExpireJobCommand represents a request to expire a job whose acceptance
// window closed without a driver. Issued by the expiry scanner, never by
// end users.
type ExpireJobCommand struct { //nolint:recvcheck //using for validation
	jobID string

	guard guard.ConstructorGuard
}

// NewExpireJobCommand creates a command to expire a job.
func NewExpireJobCommand(jobID string) (ExpireJobCommand, error) {
	cmd := ExpireJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return ExpireJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireJobCommand) Validate() error {
	return c.guard.Validate(ErrExpireJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being expired.
func (c ExpireJobCommand) JobID() string {
	return c.jobID
}

func (c *ExpireJobCommand) setJobID(jobID string) error {
	if !kernel.ValidateIdent(jobID, kernel.KindJob) {
		return errs.NewValueIsInvalidErrorWithCause("jobID",
			fmt.Errorf("%q is not a job identifier", jobID))
	}
	c.jobID = jobID
	return nil
}
