package queries_test

import (
	"context"
	"testing"
	"time"

	"sparrow/internal/core/domain/model/driver"
	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) AddJob(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) UpdateJob(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockJobRepository) GetJob(ctx context.Context, id string) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) ListJobIDsForCustomer(ctx context.Context, customerID string) ([]string, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockJobRepository) ListJobIDsForDriver(ctx context.Context, driverID string) ([]string, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockJobRepository) AddJobToCustomerIndex(ctx context.Context, customerID, jobID string) error {
	args := m.Called(ctx, customerID, jobID)
	return args.Error(0)
}

func (m *MockJobRepository) AddJobToDriverIndex(ctx context.Context, driverID, jobID string) error {
	args := m.Called(ctx, driverID, jobID)
	return args.Error(0)
}

func (m *MockJobRepository) RemoveJobFromDriverIndex(ctx context.Context, driverID, jobID string) error {
	args := m.Called(ctx, driverID, jobID)
	return args.Error(0)
}

func (m *MockJobRepository) ListJobIDsDueForExpiry(ctx context.Context, now time.Time) ([]string, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockDriverDirectory struct{ mock.Mock }

func (m *MockDriverDirectory) FindNearby(
	ctx context.Context, center kernel.Coordinates, radiusKm float64, limit int) ([]driver.Summary, error) {
	args := m.Called(ctx, center, radiusKm, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]driver.Summary), args.Error(1)
}

func accraLocation(t *testing.T) job.Location {
	t.Helper()

	coords, err := kernel.NewCoordinates(5.6037, -0.1870)
	require.NoError(t, err)

	loc, err := job.NewLocation(coords, "12 Independence Ave", "Accra",
		"Greater Accra", "Ghana", "", "Ama Mensah", "+233201234567", "")
	require.NoError(t, err)

	return loc
}

func osuLocation(t *testing.T) job.Location {
	t.Helper()

	coords, err := kernel.NewCoordinates(5.5560, -0.1820)
	require.NoError(t, err)

	loc, err := job.NewLocation(coords, "24 Oxford St", "Accra",
		"Greater Accra", "Ghana", "", "Kofi Boateng", "+233209876543", "")
	require.NoError(t, err)

	return loc
}

// jobCreatedAt builds a pending job with a fixed creation instant so list
// ordering is deterministic.
func jobCreatedAt(t *testing.T, id string, createdAt time.Time) *job.Job {
	t.Helper()

	dims := job.Dimensions{LengthCm: 30, WidthCm: 20, HeightCm: 10}
	pkg, err := job.NewPackageDetails(job.SmallPackage, "birthday gift",
		2.5, dims, 0, false, false, "")
	require.NoError(t, err)

	pricing, err := job.NewPricing(15, 12.5, 1.2, 5, 0, 3.37, 1.011, 38.081, "GHS", false)
	require.NoError(t, err)

	aggregate, err := job.NewJob(job.NewJobParams{
		ID:              id,
		CustomerID:      "usr-240101-x9y8z",
		Priority:        job.Standard,
		Pickup:          accraLocation(t),
		Dropoff:         osuLocation(t),
		Package:         pkg,
		Pricing:         pricing,
		DistanceKm:      5.31,
		DurationMin:     10,
		PaymentMethodID: "pay-240301-d4e5f",
		Now:             createdAt,
	})
	require.NoError(t, err)

	return aggregate
}
