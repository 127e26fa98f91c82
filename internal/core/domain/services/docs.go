// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch engine. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PriceCalculator: computes fare breakdowns and distance/duration estimates
//     from a configured tariff
//   - DriverMatcher: filters and ranks dispatch candidates around a pickup point
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
