package commands

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrUpdateJobStatusCommandIsNotConstructed = errors.New(
	"UpdateJobStatusCommand must be created via NewUpdateJobStatusCommand constructor",
)

// UpdateJobStatusCommand represents a request to move a job to a new
// lifecycle status. The optional driver ID is only meaningful when the
// requested status is DriverAssigned.
type UpdateJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID    string
	status   job.Status
	driverID string

	guard guard.ConstructorGuard
}

// NewUpdateJobStatusCommand creates a command to update a job's status.
// driverID may be empty for any status other than DriverAssigned.
func NewUpdateJobStatusCommand(jobID string, status job.Status, driverID string) (UpdateJobStatusCommand, error) {
	cmd := UpdateJobStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setStatus(status),
		cmd.setDriverID(driverID),
	); err != nil {
		return UpdateJobStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobStatusCommandIsNotConstructed)
}

// JobID returns the identifier of the job being updated.
func (c UpdateJobStatusCommand) JobID() string {
	return c.jobID
}

// Status returns the requested lifecycle status.
func (c UpdateJobStatusCommand) Status() job.Status {
	return c.status
}

// DriverID returns the accepting driver's identifier, empty unless the
// update assigns a driver.
func (c UpdateJobStatusCommand) DriverID() string {
	return c.driverID
}

func (c *UpdateJobStatusCommand) setJobID(jobID string) error {
	if !kernel.ValidateIdent(jobID, kernel.KindJob) {
		return errs.NewValueIsInvalidErrorWithCause("jobID",
			fmt.Errorf("%q is not a job identifier", jobID))
	}
	c.jobID = jobID
	return nil
}

func (c *UpdateJobStatusCommand) setStatus(status job.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *UpdateJobStatusCommand) setDriverID(driverID string) error {
	if driverID == "" {
		return nil
	}
	if !kernel.ValidateIdent(driverID, kernel.KindDriver) {
		return errs.NewValueIsInvalidErrorWithCause("driverID",
			fmt.Errorf("%q is not a driver identifier", driverID))
	}
	c.driverID = driverID
	return nil
}
