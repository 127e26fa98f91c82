// Package errs provides standardized error types for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping used throughout the application.
//
// The error taxonomy maps directly onto the outcomes the engine can produce:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures, always returned to the caller
//   - ObjectNotFoundError: a job or driver is absent
//   - ConflictError: an illegal state transition or assignment overwrite
//   - VersionConflictError: a conditional write lost a concurrent race
//   - DependencyUnavailableError: storage or a gateway is unreachable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired) for errors.Is checks
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method resolving to the type's sentinel
//
// The HTTP adapter converts sentinels into transport status codes and
// machine-readable categories; nothing inside the engine inspects messages.
package errs
