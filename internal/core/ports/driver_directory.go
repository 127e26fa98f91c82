package ports

import (
	"context"

	"sparrow/internal/core/domain/model/driver"
	"sparrow/internal/core/domain/model/kernel"
)

// DriverDirectory defines the read-only view onto the external driver
// registry. The dispatch engine only ever asks it for candidates around a
// pickup point; driver state is owned elsewhere.
type DriverDirectory interface {
	// FindNearby returns up to limit driver summaries within radiusKm of
	// the given point. The directory does not rank results; ordering is
	// the matcher's concern.
	FindNearby(ctx context.Context, center kernel.Coordinates, radiusKm float64, limit int) ([]driver.Summary, error)
}
