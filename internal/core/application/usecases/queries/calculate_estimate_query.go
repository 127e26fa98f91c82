package queries

import (
	"errors"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/guard"
)

var ErrCalculateEstimateQueryIsNotConstructed = errors.New(
	"CalculateEstimateQuery must be created via NewCalculateEstimateQuery constructor",
)

// CalculateEstimateQuery prices a hypothetical delivery without creating a
// job. Coordinates arrive as raw lat/lon pairs and the enum fields as their
// wire strings so callers validate once, here.
type CalculateEstimateQuery struct {
	pickup      kernel.Coordinates
	dropoff     kernel.Coordinates
	priority    job.Priority
	packageType job.PackageType

	guard guard.ConstructorGuard
}

// NewCalculateEstimateQuery creates an estimate query from raw input.
func NewCalculateEstimateQuery(
	pickupLat, pickupLon, dropoffLat, dropoffLon float64,
	priority, packageType string,
) (CalculateEstimateQuery, error) {
	pickup, err := kernel.NewCoordinates(pickupLat, pickupLon)
	if err != nil {
		return CalculateEstimateQuery{}, err
	}

	dropoff, err := kernel.NewCoordinates(dropoffLat, dropoffLon)
	if err != nil {
		return CalculateEstimateQuery{}, err
	}

	prio, err := job.PriorityFromString(priority)
	if err != nil {
		return CalculateEstimateQuery{}, err
	}

	pkgType, err := job.PackageTypeFromString(packageType)
	if err != nil {
		return CalculateEstimateQuery{}, err
	}

	return CalculateEstimateQuery{
		pickup:      pickup,
		dropoff:     dropoff,
		priority:    prio,
		packageType: pkgType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CalculateEstimateQuery) Validate() error {
	return q.guard.Validate(ErrCalculateEstimateQueryIsNotConstructed)
}

// Pickup returns the pickup coordinates.
func (q CalculateEstimateQuery) Pickup() kernel.Coordinates {
	return q.pickup
}

// Dropoff returns the dropoff coordinates.
func (q CalculateEstimateQuery) Dropoff() kernel.Coordinates {
	return q.dropoff
}

// Priority returns the requested priority tier.
func (q CalculateEstimateQuery) Priority() job.Priority {
	return q.priority
}

// PackageType returns the requested package type.
func (q CalculateEstimateQuery) PackageType() job.PackageType {
	return q.packageType
}
