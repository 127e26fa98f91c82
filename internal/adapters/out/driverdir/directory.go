// Package driverdir provides an in-memory driver directory. Driver presence
// is owned by a separate system; this adapter holds the locally known
// snapshot and answers radius queries against it.
package driverdir

import (
	"context"
	"sync"

	"sparrow/internal/core/domain/model/driver"
	"sparrow/internal/core/domain/model/kernel"
)

// InMemoryDirectory keeps driver summaries keyed by driver ID.
type InMemoryDirectory struct {
	mu      sync.RWMutex
	drivers map[string]driver.Summary
}

// NewInMemoryDirectory creates an empty directory.
func NewInMemoryDirectory() *InMemoryDirectory {
	return &InMemoryDirectory{drivers: make(map[string]driver.Summary)}
}

// Upsert records the latest known summary for a driver.
func (d *InMemoryDirectory) Upsert(summary driver.Summary) error {
	if err := summary.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.drivers[summary.ID()] = summary
	return nil
}

// Remove forgets a driver. Removing an unknown driver is a no-op.
func (d *InMemoryDirectory) Remove(driverID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.drivers, driverID)
}

// FindNearby returns up to limit driver summaries within radiusKm of the
// given point. Unreachable drivers are excluded; ordering is unspecified.
func (d *InMemoryDirectory) FindNearby(
	_ context.Context, center kernel.Coordinates, radiusKm float64, limit int) ([]driver.Summary, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	found := make([]driver.Summary, 0, limit)
	for _, summary := range d.drivers {
		if !summary.Reachable() {
			continue
		}

		distanceKm, err := summary.DistanceTo(center)
		if err != nil {
			return nil, err
		}
		if distanceKm > radiusKm {
			continue
		}

		found = append(found, summary)
		if len(found) == limit {
			break
		}
	}

	return found, nil
}
