package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"sparrow/internal/core/application/usecases/commands"
	"sparrow/internal/core/domain/model/job"

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

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) NotifyDriverAssigned(ctx context.Context, aggregate *job.Job, driverID string) error {
	args := m.Called(ctx, aggregate, driverID)
	return args.Error(0)
}

func (m *MockNotificationPublisher) NotifyStatusMilestone(ctx context.Context, aggregate *job.Job, milestone job.Status) error {
	args := m.Called(ctx, aggregate, milestone)
	return args.Error(0)
}

func (m *MockNotificationPublisher) NotifyDeliveryCompleted(ctx context.Context, aggregate *job.Job) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func pickupSpec() commands.LocationSpec {
	return commands.LocationSpec{
		Latitude:     5.6037,
		Longitude:    -0.1870,
		Address:      "12 Independence Ave",
		City:         "Accra",
		Region:       "Greater Accra",
		Country:      "Ghana",
		ContactName:  "Ama Mensah",
		ContactPhone: "+233201234567",
	}
}

func dropoffSpec() commands.LocationSpec {
	return commands.LocationSpec{
		Latitude:     5.5600,
		Longitude:    -0.2057,
		Address:      "4 Ring Road West",
		City:         "Accra",
		Region:       "Greater Accra",
		Country:      "Ghana",
		ContactName:  "Kofi Boateng",
		ContactPhone: "+233209876543",
	}
}

func packageSpec() commands.PackageSpec {
	return commands.PackageSpec{
		Type:        job.SmallPackage,
		Description: "birthday gift",
		WeightKg:    2.5,
		LengthCm:    30,
		WidthCm:     20,
		HeightCm:    10,
	}
}

func testLogger() *slog.Logger {
	return slog.Default()
}

// pendingJob builds a freshly created job the way the create handler would.
func pendingJob(t *testing.T, id string) *job.Job {
	t.Helper()
	return pendingJobAt(t, id, time.Now().UTC())
}

// expiredPendingJob builds a job whose acceptance window already closed.
func expiredPendingJob(t *testing.T, id string) *job.Job {
	t.Helper()
	return pendingJobAt(t, id, time.Now().UTC().Add(-job.AcceptanceWindow-time.Hour))
}

// jobAtDropoff builds a job driven through the full delivery progression up
// to ArrivedAtDropoff.
func jobAtDropoff(t *testing.T, id string) *job.Job {
	t.Helper()

	aggregate := pendingJob(t, id)
	now := time.Now().UTC()
	require.NoError(t, aggregate.AssignDriver("drv-240101-a1b2c", now))
	for _, next := range []job.Status{
		job.DriverEnRoute, job.ArrivedAtPickup, job.PackagePickedUp,
		job.InTransit, job.ArrivedAtDropoff,
	} {
		require.NoError(t, aggregate.Advance(next, now))
	}
	return aggregate
}

func pendingJobAt(t *testing.T, id string, createdAt time.Time) *job.Job {
	t.Helper()

	cmd, err := commands.NewCreateJobCommand("usr-240101-x9y8z", job.Standard,
		pickupSpec(), dropoffSpec(), packageSpec(), "pay-240301-d4e5f", "")
	require.NoError(t, err)

	pricing, err := job.NewPricing(15, 12.5, 1.2, 5, 0, 3.37, 1.011, 38.081, "GHS", false)
	require.NoError(t, err)

	aggregate, err := job.NewJob(job.NewJobParams{
		ID:              id,
		CustomerID:      cmd.CustomerID(),
		Priority:        cmd.Priority(),
		Pickup:          cmd.Pickup(),
		Dropoff:         cmd.Dropoff(),
		Package:         cmd.Package(),
		Pricing:         pricing,
		DistanceKm:      5.31,
		DurationMin:     10,
		PaymentMethodID: cmd.PaymentMethodID(),
		Now:             createdAt,
	})
	require.NoError(t, err)

	return aggregate
}
