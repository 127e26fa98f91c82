package ports

import (
	"context"

	"sparrow/internal/core/domain/model/job"
)

// NotificationPublisher defines the fire-and-forget notification capability
// invoked at lifecycle milestones.
//
// Every method returns its delivery outcome, but callers treat failures as
// non-fatal: a failed notification is logged and never rolls back the
// lifecycle transition that triggered it.
type NotificationPublisher interface {
	// NotifyDriverAssigned tells the driver they were assigned the job.
	NotifyDriverAssigned(ctx context.Context, aggregate *job.Job, driverID string) error

	// NotifyStatusMilestone tells the customer the job reached a
	// delivery milestone.
	NotifyStatusMilestone(ctx context.Context, aggregate *job.Job, milestone job.Status) error

	// NotifyDeliveryCompleted tells the customer the package was delivered.
	NotifyDeliveryCompleted(ctx context.Context, aggregate *job.Job) error
}
