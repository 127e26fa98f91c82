package services

import (
	"errors"
	"slices"
	"sort"

	"sparrow/internal/core/domain/model/driver"
	"sparrow/internal/core/domain/model/kernel"
)

const (
	// SearchRadiusKm is how far from the pickup point the driver search reaches.
	SearchRadiusKm = 10.0

	// MaxCandidates caps how many drivers one search returns.
	MaxCandidates = 10
)

// ErrNoDriversAvailable is returned when no suitable driver is within reach
// of the pickup point. This occurs when either no candidates are provided or
// every candidate is unreachable, out of range or has already rejected
// the job.
var ErrNoDriversAvailable = errors.New("no drivers available")

// DriverMatcher is a domain service that ranks driver candidates for a job.
//
// Business rules:
//   - drivers who already rejected the job are never re-offered it
//   - unreachable drivers are skipped
//   - candidates beyond the search radius are skipped
//   - results are ordered by proximity to the pickup point, closest first,
//     and capped at MaxCandidates
//
// The matcher is read-only with respect to the job: recording offers and
// rejections is the lifecycle engine's concern.
type DriverMatcher struct{}

// NewDriverMatcher creates a new DriverMatcher instance.
func NewDriverMatcher() DriverMatcher {
	return DriverMatcher{}
}

// Match filters and ranks candidates around the pickup point, excluding
// drivers whose IDs appear in rejectedBy.
//
// Returns:
//   - the candidate driver IDs ordered by proximity, capped at MaxCandidates
//   - ErrNoDriversAvailable if nothing survives filtering, or a validation
//     error for an unconstructed candidate
func (m DriverMatcher) Match(
	candidates []driver.Summary,
	pickup kernel.Coordinates,
	rejectedBy []string,
) ([]string, error) {
	type ranked struct {
		id         string
		distanceKm float64
	}

	eligible := make([]ranked, 0, len(candidates))
	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if !candidate.Reachable() {
			continue
		}
		if slices.Contains(rejectedBy, candidate.ID()) {
			continue
		}

		distanceKm, err := candidate.DistanceTo(pickup)
		if err != nil {
			return nil, err
		}
		if distanceKm > SearchRadiusKm {
			continue
		}

		eligible = append(eligible, ranked{id: candidate.ID(), distanceKm: distanceKm})
	}

	if len(eligible) == 0 {
		return nil, ErrNoDriversAvailable
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].distanceKm < eligible[j].distanceKm
	})

	if len(eligible) > MaxCandidates {
		eligible = eligible[:MaxCandidates]
	}

	ids := make([]string, len(eligible))
	for i, r := range eligible {
		ids[i] = r.id
	}
	return ids, nil
}
