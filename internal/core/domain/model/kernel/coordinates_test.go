package kernel_test

import (
	"testing"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinates(t *testing.T) {
	t.Run("should create coordinates with valid values", func(t *testing.T) {
		coords, err := kernel.NewCoordinates(5.6037, -0.1870)

		require.NoError(t, err)
		assert.NoError(t, coords.Validate())
		assert.InDelta(t, 5.6037, coords.Latitude(), 1e-9)
		assert.InDelta(t, -0.1870, coords.Longitude(), 1e-9)
	})

	t.Run("should accept boundary values", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"south pole", -90, 0},
			{"north pole", 90, 0},
			{"antimeridian west", 0, -180},
			{"antimeridian east", 0, 180},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinates(tc.lat, tc.lon)

				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject out of range values", func(t *testing.T) {
		cases := []struct {
			name     string
			lat, lon float64
		}{
			{"latitude too low", -90.0001, 0},
			{"latitude too high", 90.0001, 0},
			{"longitude too low", 0, -180.0001},
			{"longitude too high", 0, 180.0001},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinates(tc.lat, tc.lon)

				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})
}

func TestCoordinatesValidate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var coords kernel.Coordinates

		require.ErrorIs(t, coords.Validate(), kernel.ErrCoordinatesAreNotConstructed)
	})
}

func TestCoordinatesIsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		a, err := kernel.NewCoordinates(5.6037, -0.1870)
		require.NoError(t, err)
		b, err := kernel.NewCoordinates(5.6037, -0.1870)
		require.NoError(t, err)
		c, err := kernel.NewCoordinates(6.6885, -1.6244)
		require.NoError(t, err)

		equal, err := a.IsEqual(b)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = a.IsEqual(c)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail on unconstructed operand", func(t *testing.T) {
		a, err := kernel.NewCoordinates(5.6037, -0.1870)
		require.NoError(t, err)

		_, err = a.IsEqual(kernel.Coordinates{})

		require.Error(t, err)
	})
}

func TestCoordinatesDistanceKm(t *testing.T) {
	accraEast, err := kernel.NewCoordinates(5.6037, -0.1870)
	require.NoError(t, err)
	accraWest, err := kernel.NewCoordinates(5.5600, -0.2057)
	require.NoError(t, err)

	t.Run("distance to self is zero", func(t *testing.T) {
		d, err := accraEast.DistanceKm(accraEast)

		require.NoError(t, err)
		assert.Zero(t, d)
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		forward, err := accraEast.DistanceKm(accraWest)
		require.NoError(t, err)
		backward, err := accraWest.DistanceKm(accraEast)
		require.NoError(t, err)

		assert.InDelta(t, forward, backward, 1e-9)
	})

	t.Run("should approximate a known city distance", func(t *testing.T) {
		kumasi, err := kernel.NewCoordinates(6.6885, -1.6244)
		require.NoError(t, err)

		d, err := accraEast.DistanceKm(kumasi)

		require.NoError(t, err)
		assert.InDelta(t, 198.0, d, 5.0)
	})

	t.Run("should fail on unconstructed operand", func(t *testing.T) {
		_, err := accraEast.DistanceKm(kernel.Coordinates{})

		require.Error(t, err)
	})
}
