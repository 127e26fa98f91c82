// Package notify publishes lifecycle notifications. The log publisher is
// the default sink: it stamps every notification with an envelope ID and
// writes it to structured logs, which downstream delivery channels tail.
package notify

import (
	"context"
	"log/slog"

	"sparrow/internal/core/domain/model/job"

	"github.com/google/uuid"
)

// LogPublisher emits notifications as structured log records.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a publisher that writes to the given logger.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{
		logger: logger.With("component", "notification_publisher"),
	}
}

// NotifyDriverAssigned tells the driver they were assigned the job.
func (p *LogPublisher) NotifyDriverAssigned(ctx context.Context, aggregate *job.Job, driverID string) error {
	p.logger.InfoContext(ctx, "driver assigned notification",
		"notification_id", uuid.NewString(),
		"job_id", aggregate.ID(),
		"tracking_code", aggregate.TrackingCode(),
		"driver_id", driverID,
		"recipient", driverID,
	)
	return nil
}

// NotifyStatusMilestone tells the customer the job reached a milestone.
func (p *LogPublisher) NotifyStatusMilestone(ctx context.Context, aggregate *job.Job, milestone job.Status) error {
	p.logger.InfoContext(ctx, "status milestone notification",
		"notification_id", uuid.NewString(),
		"job_id", aggregate.ID(),
		"tracking_code", aggregate.TrackingCode(),
		"milestone", milestone.String(),
		"recipient", aggregate.CustomerID(),
	)
	return nil
}

// NotifyDeliveryCompleted tells the customer the package was delivered.
func (p *LogPublisher) NotifyDeliveryCompleted(ctx context.Context, aggregate *job.Job) error {
	p.logger.InfoContext(ctx, "delivery completed notification",
		"notification_id", uuid.NewString(),
		"job_id", aggregate.ID(),
		"tracking_code", aggregate.TrackingCode(),
		"recipient", aggregate.CustomerID(),
	)
	return nil
}
