// Package driver holds the read-only driver projection consumed by
// dispatch. Drivers are owned by an external directory; this core only
// reads the minimal fields matching needs and writes the per-driver
// job-list index.
package driver

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

// ErrSummaryIsNotConstructed is returned when attempting to use an
// improperly initialized Summary value.
var ErrSummaryIsNotConstructed = errs.NewValueIsRequiredError(
	"driver summary must be created via NewSummary constructor")

// Summary is the projection of a driver as the dispatch engine sees one:
// identity, current position and whether the driver's device is reachable
// for offers. It carries no mutable driver state.
type Summary struct {
	id        string
	location  kernel.Coordinates
	reachable bool

	guard guard.ConstructorGuard
}

// NewSummary creates a driver Summary after validating the identifier's
// type tag and the location.
func NewSummary(id string, location kernel.Coordinates, reachable bool) (Summary, error) {
	s := Summary{
		reachable: reachable,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(s.setID(id), s.setLocation(location)); err != nil {
		return Summary{}, err
	}

	return s, nil
}

// Validate checks that the Summary was built via NewSummary.
func (s Summary) Validate() error {
	return s.guard.Validate(ErrSummaryIsNotConstructed)
}

// ID returns the driver's identifier.
func (s Summary) ID() string {
	return s.id
}

// Location returns the driver's last reported position.
func (s Summary) Location() kernel.Coordinates {
	return s.location
}

// Reachable reports whether the driver's device can receive offers.
func (s Summary) Reachable() bool {
	return s.reachable
}

// DistanceTo returns the great-circle distance from the driver to point,
// in kilometers.
func (s Summary) DistanceTo(point kernel.Coordinates) (float64, error) {
	return s.location.DistanceKm(point)
}

func (s *Summary) setID(id string) error {
	if !kernel.ValidateIdent(id, kernel.KindDriver) {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%q is not a driver identifier", id))
	}
	s.id = id
	return nil
}

func (s *Summary) setLocation(location kernel.Coordinates) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}
