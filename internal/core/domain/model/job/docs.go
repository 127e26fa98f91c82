// Package job contains the delivery job aggregate and its value objects.
//
// Job is the aggregate root. It owns the lifecycle state machine: a job is
// created Pending, may enter Searching, moves to DriverAssigned when a
// driver accepts, then advances one step at a time through the delivery
// chain until DeliveryCompleted. Cancelled, Failed and Expired are the
// terminal failure outcomes reachable from any non-terminal state.
//
// The value objects (Location, PackageDetails, Pricing) are immutable after
// construction; jobs never re-price and never change their endpoints. Every
// mutation of the aggregate bumps a version stamp that repository adapters
// use for conditional writes.
package job
