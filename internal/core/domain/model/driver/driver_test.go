package driver_test

import (
	"testing"

	"sparrow/internal/core/domain/model/driver"
	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSummary(t *testing.T) {
	accra, err := kernel.NewCoordinates(5.6037, -0.1870)
	require.NoError(t, err)

	t.Run("should create a summary with valid parameters", func(t *testing.T) {
		s, err := driver.NewSummary("drv-240101-a1b2c", accra, true)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "drv-240101-a1b2c", s.ID())
		assert.True(t, s.Reachable())
	})

	t.Run("should reject a non-driver identifier", func(t *testing.T) {
		_, err := driver.NewSummary("usr-240101-a1b2c", accra, true)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed coordinates", func(t *testing.T) {
		_, err := driver.NewSummary("drv-240101-a1b2c", kernel.Coordinates{}, true)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s driver.Summary

		require.ErrorIs(t, s.Validate(), driver.ErrSummaryIsNotConstructed)
	})
}
