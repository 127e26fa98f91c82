package queries_test

import (
	"context"
	"testing"
	"time"

	"sparrow/internal/core/application/usecases/queries"
	"sparrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGetJobQuery(t *testing.T) {
	t.Run("accepts a non-empty job ID", func(t *testing.T) {
		query, err := queries.NewGetJobQuery("job-240315-a1b2c")
		require.NoError(t, err)
		assert.Equal(t, "job-240315-a1b2c", query.JobID())
		assert.NoError(t, query.Validate())
	})

	t.Run("rejects an empty job ID", func(t *testing.T) {
		_, err := queries.NewGetJobQuery("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var query queries.GetJobQuery
		require.ErrorIs(t, query.Validate(), queries.ErrGetJobQueryIsNotConstructed)
	})
}

func TestGetJobQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the job from the repository", func(t *testing.T) {
		stored := jobCreatedAt(t, "job-240315-a1b2c", time.Now().UTC())

		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-a1b2c").Return(stored, nil)

		handler := queries.NewGetJobQueryHandler(repo)
		query, err := queries.NewGetJobQuery("job-240315-a1b2c")
		require.NoError(t, err)

		got, err := handler.Handle(ctx, query)
		require.NoError(t, err)
		assert.Same(t, stored, got)
		repo.AssertExpectations(t)
	})

	t.Run("malformed ID resolves to not-found without a lookup", func(t *testing.T) {
		repo := &MockJobRepository{}

		handler := queries.NewGetJobQueryHandler(repo)
		query, err := queries.NewGetJobQuery("not-a-job-id")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "GetJob", mock.Anything, mock.Anything)
	})

	t.Run("driver ID resolves to not-found", func(t *testing.T) {
		repo := &MockJobRepository{}

		handler := queries.NewGetJobQueryHandler(repo)
		query, err := queries.NewGetJobQuery("drv-240315-a1b2c")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "GetJob", mock.Anything, mock.Anything)
	})

	t.Run("propagates repository not-found", func(t *testing.T) {
		repo := &MockJobRepository{}
		repo.On("GetJob", ctx, "job-240315-zzzzz").
			Return(nil, errs.NewObjectNotFoundError("jobID", "job-240315-zzzzz"))

		handler := queries.NewGetJobQueryHandler(repo)
		query, err := queries.NewGetJobQuery("job-240315-zzzzz")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
