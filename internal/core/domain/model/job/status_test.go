package job_test

import (
	"testing"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run("should accept all lifecycle statuses", func(t *testing.T) {
		statuses := []job.Status{
			job.Pending, job.Searching, job.DriverAssigned, job.DriverEnRoute,
			job.ArrivedAtPickup, job.PackagePickedUp, job.InTransit,
			job.ArrivedAtDropoff, job.DeliveryCompleted, job.Cancelled,
			job.Failed, job.Expired,
		}

		for _, status := range statuses {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		require.Error(t, job.StatusUnknown.Validate())
		require.Error(t, job.Status(99).Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		statuses := []job.Status{
			job.Pending, job.Searching, job.DriverAssigned, job.DriverEnRoute,
			job.ArrivedAtPickup, job.PackagePickedUp, job.InTransit,
			job.ArrivedAtDropoff, job.DeliveryCompleted, job.Cancelled,
			job.Failed, job.Expired,
		}

		for _, status := range statuses {
			parsed, err := job.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := job.StatusFromString("Delivered")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusIsTerminal(t *testing.T) {
	terminal := []job.Status{job.DeliveryCompleted, job.Cancelled, job.Failed, job.Expired}
	active := []job.Status{
		job.Pending, job.Searching, job.DriverAssigned, job.DriverEnRoute,
		job.ArrivedAtPickup, job.PackagePickedUp, job.InTransit, job.ArrivedAtDropoff,
	}

	for _, status := range terminal {
		assert.True(t, status.IsTerminal(), status.String())
	}
	for _, status := range active {
		assert.False(t, status.IsTerminal(), status.String())
	}
}

func TestStatusAssign(t *testing.T) {
	t.Run("should assign from Pending and Searching", func(t *testing.T) {
		for _, from := range []job.Status{job.Pending, job.Searching} {
			next, err := from.Assign()

			require.NoError(t, err)
			assert.Equal(t, job.DriverAssigned, next)
		}
	})

	t.Run("should reject assignment from every other status", func(t *testing.T) {
		blocked := []job.Status{
			job.DriverAssigned, job.DriverEnRoute, job.ArrivedAtPickup,
			job.PackagePickedUp, job.InTransit, job.ArrivedAtDropoff,
			job.DeliveryCompleted, job.Cancelled, job.Failed, job.Expired,
		}

		for _, from := range blocked {
			_, err := from.Assign()

			require.ErrorIs(t, err, errs.ErrConflict, from.String())
		}
	})
}

func TestStatusAdvance(t *testing.T) {
	t.Run("should advance one step along the delivery chain", func(t *testing.T) {
		steps := []struct{ from, to job.Status }{
			{job.Pending, job.Searching},
			{job.DriverAssigned, job.DriverEnRoute},
			{job.DriverEnRoute, job.ArrivedAtPickup},
			{job.ArrivedAtPickup, job.PackagePickedUp},
			{job.PackagePickedUp, job.InTransit},
			{job.InTransit, job.ArrivedAtDropoff},
			{job.ArrivedAtDropoff, job.DeliveryCompleted},
		}

		for _, step := range steps {
			next, err := step.from.Advance(step.to)

			require.NoError(t, err)
			assert.Equal(t, step.to, next)
		}
	})

	t.Run("should reject skipping steps", func(t *testing.T) {
		_, err := job.DriverAssigned.Advance(job.ArrivedAtDropoff)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		_, err := job.InTransit.Advance(job.PackagePickedUp)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject leaving a terminal status", func(t *testing.T) {
		for _, from := range []job.Status{job.DeliveryCompleted, job.Cancelled, job.Failed, job.Expired} {
			_, err := from.Advance(job.Searching)

			require.ErrorIs(t, err, errs.ErrConflict, from.String())
		}
	})

	t.Run("should reject an invalid target", func(t *testing.T) {
		_, err := job.Pending.Advance(job.StatusUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusTerminate(t *testing.T) {
	t.Run("should terminate any active status", func(t *testing.T) {
		for _, terminal := range []job.Status{job.Cancelled, job.Failed, job.Expired} {
			next, err := job.InTransit.Terminate(terminal)

			require.NoError(t, err)
			assert.Equal(t, terminal, next)
		}
	})

	t.Run("should reject terminating a terminal status", func(t *testing.T) {
		_, err := job.Cancelled.Terminate(job.Failed)

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("should reject DeliveryCompleted as a termination target", func(t *testing.T) {
		_, err := job.InTransit.Terminate(job.DeliveryCompleted)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusValidateCanHaveDriver(t *testing.T) {
	t.Run("pre-assignment statuses must have no driver", func(t *testing.T) {
		require.Error(t, job.Pending.ValidateCanHaveDriver(true))
		require.NoError(t, job.Pending.ValidateCanHaveDriver(false))
		require.Error(t, job.Searching.ValidateCanHaveDriver(true))
	})

	t.Run("delivery statuses must have a driver", func(t *testing.T) {
		require.Error(t, job.InTransit.ValidateCanHaveDriver(false))
		require.NoError(t, job.InTransit.ValidateCanHaveDriver(true))
		require.Error(t, job.DeliveryCompleted.ValidateCanHaveDriver(false))
	})

	t.Run("cancelled jobs may or may not carry a driver", func(t *testing.T) {
		require.NoError(t, job.Cancelled.ValidateCanHaveDriver(true))
		require.NoError(t, job.Cancelled.ValidateCanHaveDriver(false))
	})
}
