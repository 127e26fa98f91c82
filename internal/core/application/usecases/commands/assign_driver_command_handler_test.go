package commands_test

import (
	"errors"
	"log/slog"
	"testing"

	"sparrow/internal/core/application/usecases/commands"
	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAssignDriverCommand(t *testing.T) {
	t.Run("should create command with valid identifiers", func(t *testing.T) {
		cmd, err := commands.NewAssignDriverCommand("job-240315-a1b2c", "drv-240101-a1b2c")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "job-240315-a1b2c", cmd.JobID())
		assert.Equal(t, "drv-240101-a1b2c", cmd.DriverID())
	})

	t.Run("should reject malformed identifiers without touching storage", func(t *testing.T) {
		_, err := commands.NewAssignDriverCommand("invalid", "drv-240101-a1b2c")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewAssignDriverCommand("job-240315-a1b2c", "usr-240101-a1b2c")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAssignDriverCommandHandler_Handle(t *testing.T) {
	logger := slog.Default()

	t.Run("should assign the driver, index the job and notify", func(t *testing.T) {
		ctx := t.Context()
		aggregate := pendingJob(t, "job-240315-a1b2c")

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)
		repo.On("UpdateJob", ctx, aggregate).Return(nil)
		repo.On("AddJobToDriverIndex", ctx, "drv-240101-a1b2c", "job-240315-a1b2c").Return(nil)

		notifier := &MockNotificationPublisher{}
		notifier.On("NotifyDriverAssigned", ctx, aggregate, "drv-240101-a1b2c").Return(nil)

		handler := commands.NewAssignDriverCommandHandler(repo, notifier, logger)
		cmd, err := commands.NewAssignDriverCommand("job-240315-a1b2c", "drv-240101-a1b2c")
		require.NoError(t, err)

		assigned, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, job.DriverAssigned, assigned.Status())
		assert.Equal(t, "drv-240101-a1b2c", assigned.DriverID())
		assert.NotNil(t, assigned.AcceptedAt())
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should surface a conflict when a driver is already assigned", func(t *testing.T) {
		ctx := t.Context()
		aggregate := pendingJob(t, "job-240315-a1b2c")
		require.NoError(t, aggregate.AssignDriver("drv-240101-aaa11", aggregate.CreatedAt()))

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)

		handler := commands.NewAssignDriverCommandHandler(repo, &MockNotificationPublisher{}, logger)
		cmd, err := commands.NewAssignDriverCommand("job-240315-a1b2c", "drv-240101-bbb22")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, "drv-240101-aaa11", aggregate.DriverID())
		repo.AssertNotCalled(t, "UpdateJob", mock.Anything, mock.Anything)
	})

	t.Run("should surface a version conflict from the conditional write", func(t *testing.T) {
		ctx := t.Context()
		aggregate := pendingJob(t, "job-240315-a1b2c")

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)
		repo.On("UpdateJob", ctx, aggregate).
			Return(errs.NewVersionConflictError(aggregate.ID(), aggregate.Version()))

		handler := commands.NewAssignDriverCommandHandler(repo, &MockNotificationPublisher{}, logger)
		cmd, err := commands.NewAssignDriverCommand("job-240315-a1b2c", "drv-240101-a1b2c")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrVersionConflict)
		repo.AssertNotCalled(t, "AddJobToDriverIndex", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("notification failure does not fail the assignment", func(t *testing.T) {
		ctx := t.Context()
		aggregate := pendingJob(t, "job-240315-a1b2c")

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(aggregate, nil)
		repo.On("UpdateJob", ctx, aggregate).Return(nil)
		repo.On("AddJobToDriverIndex", ctx, "drv-240101-a1b2c", "job-240315-a1b2c").Return(nil)

		notifier := &MockNotificationPublisher{}
		notifier.On("NotifyDriverAssigned", ctx, aggregate, "drv-240101-a1b2c").
			Return(errors.New("push gateway timeout"))

		handler := commands.NewAssignDriverCommandHandler(repo, notifier, logger)
		cmd, err := commands.NewAssignDriverCommand("job-240315-a1b2c", "drv-240101-a1b2c")
		require.NoError(t, err)

		assigned, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, job.DriverAssigned, assigned.Status())
	})

	t.Run("should surface not-found from the repository", func(t *testing.T) {
		ctx := t.Context()
		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").
			Return(nil, errs.NewObjectNotFoundError("jobID", "job-240315-a1b2c"))

		handler := commands.NewAssignDriverCommandHandler(repo, &MockNotificationPublisher{}, logger)
		cmd, err := commands.NewAssignDriverCommand("job-240315-a1b2c", "drv-240101-a1b2c")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
