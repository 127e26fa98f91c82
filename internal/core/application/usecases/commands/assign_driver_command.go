package commands

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrAssignDriverCommandIsNotConstructed = errors.New(
	"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
)

// AssignDriverCommand represents a request to assign a driver to a job.
//
// Both identifiers are format-gated at construction: a structurally invalid
// ID never reaches the repository.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	jobID    string
	driverID string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a command to assign a driver to a job.
func NewAssignDriverCommand(jobID, driverID string) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// JobID returns the identifier of the job being assigned.
func (c AssignDriverCommand) JobID() string {
	return c.jobID
}

// DriverID returns the identifier of the accepting driver.
func (c AssignDriverCommand) DriverID() string {
	return c.driverID
}

func (c *AssignDriverCommand) setJobID(jobID string) error {
	if !kernel.ValidateIdent(jobID, kernel.KindJob) {
		return errs.NewValueIsInvalidErrorWithCause("jobID",
			fmt.Errorf("%q is not a job identifier", jobID))
	}
	c.jobID = jobID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID string) error {
	if !kernel.ValidateIdent(driverID, kernel.KindDriver) {
		return errs.NewValueIsInvalidErrorWithCause("driverID",
			fmt.Errorf("%q is not a driver identifier", driverID))
	}
	c.driverID = driverID
	return nil
}
