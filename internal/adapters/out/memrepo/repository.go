// Package memrepo provides an in-memory job repository. It backs local
// development and tests, and honors the same conditional-write contract as
// the durable implementation.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/pkg/errs"
)

// JobRepository keeps job aggregates and their secondary indices in process
// memory, guarded by a single lock. Aggregates are snapshotted on the way in
// and out so callers never share mutable state with the store.
type JobRepository struct {
	mu         sync.RWMutex
	jobs       map[string]*job.Job
	byCustomer map[string]map[string]struct{}
	byDriver   map[string]map[string]struct{}
}

// NewJobRepository creates an empty in-memory repository.
func NewJobRepository() *JobRepository {
	return &JobRepository{
		jobs:       make(map[string]*job.Job),
		byCustomer: make(map[string]map[string]struct{}),
		byDriver:   make(map[string]map[string]struct{}),
	}
}

// AddJob persists a new job aggregate.
func (r *JobRepository) AddJob(_ context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[aggregate.ID()]; exists {
		return errs.NewConflictError("add job", "job already exists: "+aggregate.ID())
	}

	snapshot, err := clone(aggregate)
	if err != nil {
		return err
	}
	r.jobs[aggregate.ID()] = snapshot
	return nil
}

// UpdateJob persists changes to an existing job. The write succeeds only
// when the stored version is exactly one behind the incoming aggregate,
// otherwise the caller raced another writer and must re-fetch.
func (r *JobRepository) UpdateJob(_ context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.jobs[aggregate.ID()]
	if !exists {
		return errs.NewObjectNotFoundError("jobID", aggregate.ID())
	}

	if stored.Version() != aggregate.Version()-1 {
		return errs.NewVersionConflictError(aggregate.ID(), aggregate.Version()-1)
	}

	snapshot, err := clone(aggregate)
	if err != nil {
		return err
	}
	r.jobs[aggregate.ID()] = snapshot
	return nil
}

// GetJob retrieves a job by its identifier.
func (r *JobRepository) GetJob(_ context.Context, id string) (*job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, exists := r.jobs[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("jobID", id)
	}

	return clone(stored)
}

// ListJobIDsForCustomer returns the IDs of all jobs created by the customer.
func (r *JobRepository) ListJobIDsForCustomer(_ context.Context, customerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.byCustomer[customerID]), nil
}

// ListJobIDsForDriver returns the IDs of all jobs in the driver's index.
func (r *JobRepository) ListJobIDsForDriver(_ context.Context, driverID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedKeys(r.byDriver[driverID]), nil
}

// AddJobToCustomerIndex records a job in the customer's job list.
func (r *JobRepository) AddJobToCustomerIndex(_ context.Context, customerID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byCustomer[customerID] == nil {
		r.byCustomer[customerID] = make(map[string]struct{})
	}
	r.byCustomer[customerID][jobID] = struct{}{}
	return nil
}

// AddJobToDriverIndex records a job in the driver's active-job list.
func (r *JobRepository) AddJobToDriverIndex(_ context.Context, driverID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.byDriver[driverID] == nil {
		r.byDriver[driverID] = make(map[string]struct{})
	}
	r.byDriver[driverID][jobID] = struct{}{}
	return nil
}

// RemoveJobFromDriverIndex drops a job from the driver's active-job list.
func (r *JobRepository) RemoveJobFromDriverIndex(_ context.Context, driverID, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.byDriver[driverID], jobID)
	return nil
}

// ListJobIDsDueForExpiry returns jobs still waiting for a driver whose
// acceptance deadline has passed.
func (r *JobRepository) ListJobIDsDueForExpiry(_ context.Context, now time.Time) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var due []string
	for id, stored := range r.jobs {
		if stored.IsDueForExpiry(now) {
			due = append(due, id)
		}
	}
	sort.Strings(due)
	return due, nil
}

func sortedKeys(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// clone rebuilds an aggregate from its observable state so the store and
// its callers never alias the same instance.
func clone(aggregate *job.Job) (*job.Job, error) {
	return job.RestoreJob(job.RestoreJobParams{
		ID:              aggregate.ID(),
		TrackingCode:    aggregate.TrackingCode(),
		CustomerID:      aggregate.CustomerID(),
		DriverID:        aggregate.DriverID(),
		Status:          aggregate.Status(),
		Priority:        aggregate.Priority(),
		Pickup:          aggregate.Pickup(),
		Dropoff:         aggregate.Dropoff(),
		DistanceKm:      aggregate.EstimatedDistanceKm(),
		DurationMin:     aggregate.EstimatedDurationMin(),
		Package:         aggregate.Package(),
		CreatedAt:       aggregate.CreatedAt(),
		AcceptedAt:      copyTime(aggregate.AcceptedAt()),
		PickupTime:      copyTime(aggregate.PickupTime()),
		DropoffTime:     copyTime(aggregate.DropoffTime()),
		CancelledAt:     copyTime(aggregate.CancelledAt()),
		ExpiresAt:       aggregate.ExpiresAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Pricing:         aggregate.Pricing(),
		PaymentMethodID: aggregate.PaymentMethodID(),
		PaymentStatus:   aggregate.PaymentStatus(),
		Notes:           aggregate.Notes(),
		CancelReason:    aggregate.CancelReason(),
		OfferedDrivers:  append([]string(nil), aggregate.OfferedToDrivers()...),
		RejectedDrivers: append([]string(nil), aggregate.RejectedByDrivers()...),
		Version:         aggregate.Version(),
	})
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	value := *t
	return &value
}
