package ports

import (
	"context"
	"time"

	"sparrow/internal/core/domain/model/job"
)

// JobRepository defines the persistence contract for job aggregates: a
// keyed record store plus set-based secondary indices (per-customer and
// per-driver job lists).
//
// Consistency contract: per-key operations on one job ID are linearizable
// from the engine's viewpoint, and UpdateJob is conditional on the version
// stamp the caller read, so concurrent writers cannot silently overwrite
// each other.
type JobRepository interface {
	// AddJob persists a new job aggregate. The job must not already exist.
	AddJob(ctx context.Context, aggregate *job.Job) error

	// UpdateJob persists changes to an existing job. The write is
	// conditional: it succeeds only when the stored version matches the
	// version the caller read before mutating, otherwise it fails with
	// errs.ErrVersionConflict and the caller must re-fetch.
	UpdateJob(ctx context.Context, aggregate *job.Job) error

	// GetJob retrieves a job by its identifier.
	// Returns errs.ErrObjectNotFound when no such job exists.
	GetJob(ctx context.Context, id string) (*job.Job, error)

	// ListJobIDsForCustomer returns the IDs of all jobs created by
	// the customer.
	ListJobIDsForCustomer(ctx context.Context, customerID string) ([]string, error)

	// ListJobIDsForDriver returns the IDs of all jobs in the driver's
	// active-job index.
	ListJobIDsForDriver(ctx context.Context, driverID string) ([]string, error)

	// AddJobToCustomerIndex records a job in the customer's job list.
	// Adding an already indexed job is a no-op.
	AddJobToCustomerIndex(ctx context.Context, customerID, jobID string) error

	// AddJobToDriverIndex records a job in the driver's active-job list.
	// Adding an already indexed job is a no-op.
	AddJobToDriverIndex(ctx context.Context, driverID, jobID string) error

	// RemoveJobFromDriverIndex drops a job from the driver's active-job
	// list. Removing an absent entry is a no-op.
	RemoveJobFromDriverIndex(ctx context.Context, driverID, jobID string) error

	// ListJobIDsDueForExpiry returns the IDs of jobs still waiting for a
	// driver whose acceptance deadline is at or before now. The expiry
	// scanner feeds these to the expire transition one at a time.
	ListJobIDsDueForExpiry(ctx context.Context, now time.Time) ([]string, error)
}
