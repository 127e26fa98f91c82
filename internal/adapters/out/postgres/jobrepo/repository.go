package jobrepo

import (
	"context"
	"errors"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements the job repository contract using GORM.
type GormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// infraError classifies database errors that are not part of the repository
// contract (connection failures, timeouts) as dependency failures so the
// edge can answer with a retryable outcome instead of an internal error.
func infraError(err error) error {
	if err == nil {
		return nil
	}
	return errs.NewDependencyUnavailableError("job repository", err)
}

// AddJob saves a new job to the database.
func (r *GormJobRepository) AddJob(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("add job", "job already exists: "+aggregate.ID())
		}
		return infraError(err)
	}

	return nil
}

// UpdateJob saves an existing job. The write is conditional on the version
// the caller read: the WHERE clause matches the previous version, so a
// stale writer updates zero rows and gets a version conflict.
func (r *GormJobRepository) UpdateJob(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	expectedVersion := aggregate.Version() - 1

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND version = ?", dto.ID, expectedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return infraError(result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&JobDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return infraError(err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("jobID", dto.ID)
		}
		return errs.NewVersionConflictError(dto.ID, expectedVersion)
	}

	return nil
}

// GetJob retrieves a job by its identifier.
func (r *GormJobRepository) GetJob(ctx context.Context, id string) (*job.Job, error) {
	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobID", id)
		}
		return nil, infraError(err)
	}

	return toDomain(dto)
}

// ListJobIDsForCustomer returns the IDs of all jobs created by the customer.
func (r *GormJobRepository) ListJobIDsForCustomer(ctx context.Context, customerID string) ([]string, error) {
	return r.listIndex(ctx, ownerKindCustomer, customerID)
}

// ListJobIDsForDriver returns the IDs of all jobs in the driver's index.
func (r *GormJobRepository) ListJobIDsForDriver(ctx context.Context, driverID string) ([]string, error) {
	return r.listIndex(ctx, ownerKindDriver, driverID)
}

// AddJobToCustomerIndex records a job in the customer's job list.
func (r *GormJobRepository) AddJobToCustomerIndex(ctx context.Context, customerID, jobID string) error {
	return r.addIndex(ctx, ownerKindCustomer, customerID, jobID)
}

// AddJobToDriverIndex records a job in the driver's active-job list.
func (r *GormJobRepository) AddJobToDriverIndex(ctx context.Context, driverID, jobID string) error {
	return r.addIndex(ctx, ownerKindDriver, driverID, jobID)
}

// RemoveJobFromDriverIndex drops a job from the driver's active-job list.
// Removing an absent entry is a no-op.
func (r *GormJobRepository) RemoveJobFromDriverIndex(ctx context.Context, driverID, jobID string) error {
	return infraError(r.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ? AND job_id = ?", ownerKindDriver, driverID, jobID).
		Delete(&JobIndexDTO{}).Error)
}

// ListJobIDsDueForExpiry returns jobs still waiting for a driver whose
// acceptance deadline is at or before now.
func (r *GormJobRepository) ListJobIDsDueForExpiry(ctx context.Context, now time.Time) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("status IN ? AND expires_at <= ?", []int{int(job.Pending), int(job.Searching)}, now).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, infraError(err)
	}
	return ids, nil
}

func (r *GormJobRepository) listIndex(ctx context.Context, ownerKind, ownerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&JobIndexDTO{}).
		Where("owner_kind = ? AND owner_id = ?", ownerKind, ownerID).
		Order("job_id").
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, infraError(err)
	}
	return ids, nil
}

func (r *GormJobRepository) addIndex(ctx context.Context, ownerKind, ownerID, jobID string) error {
	dto := JobIndexDTO{OwnerKind: ownerKind, OwnerID: ownerID, JobID: jobID}
	return infraError(r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error)
}
