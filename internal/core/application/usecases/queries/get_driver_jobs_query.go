package queries

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrGetDriverJobsQueryIsNotConstructed = errors.New(
	"GetDriverJobsQuery must be created via NewGetDriverJobsQuery constructor",
)

// GetDriverJobsQuery retrieves every job currently attached to a driver.
type GetDriverJobsQuery struct {
	driverID string

	guard guard.ConstructorGuard
}

// NewGetDriverJobsQuery creates a query for a driver's job list.
func NewGetDriverJobsQuery(driverID string) (GetDriverJobsQuery, error) {
	if !kernel.ValidateIdent(driverID, kernel.KindDriver) {
		return GetDriverJobsQuery{}, errs.NewValueIsInvalidErrorWithCause("driverID",
			fmt.Errorf("%q is not a driver identifier", driverID))
	}

	return GetDriverJobsQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverJobsQueryIsNotConstructed)
}

// DriverID returns the driver whose jobs are requested.
func (q GetDriverJobsQuery) DriverID() string {
	return q.driverID
}
