// Package commands contains business operations that modify job state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: an ID-format
// gate at construction, a fresh read of the record, one aggregate
// transition, a conditional write, then index and notification side
// effects. Notifications are best-effort and never roll back a persisted
// transition.
package commands
