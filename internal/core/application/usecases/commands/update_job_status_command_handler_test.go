package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"sparrow/internal/core/application/usecases/commands"
	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func assignedJob(t *testing.T, id string) *job.Job {
	t.Helper()

	aggregate := pendingJob(t, id)
	require.NoError(t, aggregate.AssignDriver("drv-240101-a1b2c", time.Now().UTC()))
	return aggregate
}

func TestNewUpdateJobStatusCommand(t *testing.T) {
	t.Run("should create command with a valid status", func(t *testing.T) {
		cmd, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.InTransit, "")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, job.InTransit, cmd.Status())
		assert.Empty(t, cmd.DriverID())
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.StatusUnknown, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a malformed optional driver identifier", func(t *testing.T) {
		_, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.DriverAssigned, "bogus")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUpdateJobStatusCommandHandler_Handle(t *testing.T) {
	logger := slog.Default()

	t.Run("should advance one step and notify the milestone", func(t *testing.T) {
		ctx := t.Context()
		aggregate := assignedJob(t, "job-240315-a1b2c")

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)
		repo.On("UpdateJob", ctx, aggregate).Return(nil)

		notifier := &MockNotificationPublisher{}
		notifier.On("NotifyStatusMilestone", ctx, aggregate, job.DriverEnRoute).Return(nil)

		handler := commands.NewUpdateJobStatusCommandHandler(repo, notifier, logger)
		cmd, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.DriverEnRoute, "")
		require.NoError(t, err)

		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, job.DriverEnRoute, updated.Status())
		notifier.AssertExpectations(t)
	})

	t.Run("should record pickup time when the package is picked up", func(t *testing.T) {
		ctx := t.Context()
		aggregate := assignedJob(t, "job-240315-a1b2c")
		now := time.Now().UTC()
		require.NoError(t, aggregate.Advance(job.DriverEnRoute, now))
		require.NoError(t, aggregate.Advance(job.ArrivedAtPickup, now))

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)
		repo.On("UpdateJob", ctx, aggregate).Return(nil)

		notifier := &MockNotificationPublisher{}
		notifier.On("NotifyStatusMilestone", ctx, aggregate, job.PackagePickedUp).Return(nil)

		handler := commands.NewUpdateJobStatusCommandHandler(repo, notifier, logger)
		cmd, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.PackagePickedUp, "")
		require.NoError(t, err)

		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.NotNil(t, updated.PickupTime())
	})

	t.Run("should assign via status update and index the driver", func(t *testing.T) {
		ctx := t.Context()
		aggregate := pendingJob(t, "job-240315-a1b2c")

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)
		repo.On("UpdateJob", ctx, aggregate).Return(nil)
		repo.On("AddJobToDriverIndex", ctx, "drv-240101-a1b2c", "job-240315-a1b2c").Return(nil)

		notifier := &MockNotificationPublisher{}
		notifier.On("NotifyDriverAssigned", ctx, aggregate, "drv-240101-a1b2c").Return(nil)

		handler := commands.NewUpdateJobStatusCommandHandler(repo, notifier, logger)
		cmd, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.DriverAssigned, "drv-240101-a1b2c")
		require.NoError(t, err)

		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, job.DriverAssigned, updated.Status())
		repo.AssertExpectations(t)
	})

	t.Run("should require a driver when assigning via status update", func(t *testing.T) {
		ctx := t.Context()
		aggregate := pendingJob(t, "job-240315-a1b2c")

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)

		handler := commands.NewUpdateJobStatusCommandHandler(repo, &MockNotificationPublisher{}, logger)
		cmd, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.DriverAssigned, "")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject skipping steps with a conflict", func(t *testing.T) {
		ctx := t.Context()
		aggregate := assignedJob(t, "job-240315-a1b2c")

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)

		handler := commands.NewUpdateJobStatusCommandHandler(repo, &MockNotificationPublisher{}, logger)
		cmd, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.ArrivedAtDropoff, "")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		repo.AssertNotCalled(t, "UpdateJob", mock.Anything, mock.Anything)
	})

	t.Run("cancelling via status update clears the driver index", func(t *testing.T) {
		ctx := t.Context()
		aggregate := assignedJob(t, "job-240315-a1b2c")

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)
		repo.On("UpdateJob", ctx, aggregate).Return(nil)
		repo.On("RemoveJobFromDriverIndex", ctx, "drv-240101-a1b2c", "job-240315-a1b2c").Return(nil)

		handler := commands.NewUpdateJobStatusCommandHandler(repo, &MockNotificationPublisher{}, logger)
		cmd, err := commands.NewUpdateJobStatusCommand("job-240315-a1b2c", job.Cancelled, "")
		require.NoError(t, err)

		updated, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, job.Cancelled, updated.Status())
		assert.NotNil(t, updated.CancelledAt())
		repo.AssertExpectations(t)
	})
}
