// Package queries contains read operations for retrieving job state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries go through the repository contract rather than a
// dedicated read store so they behave identically on the durable and the
// in-memory backends, and they never mutate the records they return.
package queries
