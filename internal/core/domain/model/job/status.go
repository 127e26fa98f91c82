package job

import (
	"fmt"

	"sparrow/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery job.
// It implements a state machine with defined transitions to ensure
// jobs follow the correct delivery workflow.
//
// State transitions:
//
//	Pending ──> Searching ──> DriverAssigned ──> DriverEnRoute ──> ArrivedAtPickup
//	   │            │               │                                      │
//	   └── assign ──┘               v                                      v
//	                          PackagePickedUp ──> InTransit ──> ArrivedAtDropoff
//	                                                                       │
//	                                                                       v
//	                                                             DeliveryCompleted
//
// Any non-terminal state may additionally move to Cancelled, Failed or
// Expired. DeliveryCompleted, Cancelled, Failed and Expired are terminal:
// no transition leaves them.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status when a job is first created.
	// Jobs in this status are waiting for a driver to accept them.
	Pending

	// Searching indicates the platform is actively looking for drivers.
	Searching

	// DriverAssigned indicates a driver accepted the job but is not yet
	// en route to the pickup point.
	DriverAssigned

	// DriverEnRoute indicates the driver is on the way to pickup.
	DriverEnRoute

	// ArrivedAtPickup indicates the driver arrived at the pickup location.
	ArrivedAtPickup

	// PackagePickedUp indicates the package was collected from the sender.
	PackagePickedUp

	// InTransit indicates the package is being delivered.
	InTransit

	// ArrivedAtDropoff indicates the driver arrived at the destination.
	ArrivedAtDropoff

	// DeliveryCompleted indicates the package was successfully delivered.
	// This is a terminal state.
	DeliveryCompleted

	// Cancelled indicates the job was cancelled. Terminal state.
	Cancelled

	// Failed indicates the delivery failed, for example because the
	// recipient was not available. Terminal state.
	Failed

	// Expired indicates no driver accepted the job before its acceptance
	// window closed. Terminal state.
	Expired
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "Unknown",
		Pending:           "Pending",
		Searching:         "Searching",
		DriverAssigned:    "DriverAssigned",
		DriverEnRoute:     "DriverEnRoute",
		ArrivedAtPickup:   "ArrivedAtPickup",
		PackagePickedUp:   "PackagePickedUp",
		InTransit:         "InTransit",
		ArrivedAtDropoff:  "ArrivedAtDropoff",
		DeliveryCompleted: "DeliveryCompleted",
		Cancelled:         "Cancelled",
		Failed:            "Failed",
		Expired:           "Expired",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, StatusUnknown)
	return strings
}

// StatusFromString resolves a status name as stored or transmitted back to
// its Status value. The match is exact and case-sensitive.
//
// Returns:
//   - the Status and nil for a recognized name
//   - (StatusUnknown, error) for anything else
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is valid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	switch s {
	case DeliveryCompleted, Cancelled, Failed, Expired:
		return true
	default:
		return false
	}
}

// progression returns the ordered delivery chain. Advancing a job moves it
// exactly one step along this chain; skipping steps is rejected.
func progression() []Status {
	return []Status{
		Pending,
		Searching,
		DriverAssigned,
		DriverEnRoute,
		ArrivedAtPickup,
		PackagePickedUp,
		InTransit,
		ArrivedAtDropoff,
		DeliveryCompleted,
	}
}

// successor returns the next status in the delivery chain, or StatusUnknown
// when the status is terminal or off the chain.
func (s Status) successor() Status {
	chain := progression()
	for i, status := range chain[:len(chain)-1] {
		if status == s {
			return chain[i+1]
		}
	}
	return StatusUnknown
}

// ValidateAssign checks if the status allows driver assignment without
// performing the transition.
//
// Valid statuses for assignment:
//   - Pending (a driver accepted directly)
//   - Searching (a driver accepted during active search)
//
// Returns:
//   - nil if assignment is allowed from current status
//   - error with details if assignment is not allowed
//
// This method provides assignability validation without side effects,
// useful for pre-validation and business logic checks.
func (s Status) ValidateAssign() error {
	if s != Pending && s != Searching {
		return errs.NewConflictError("assign driver",
			fmt.Sprintf("%s is not a valid status to assign a driver from", s))
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between job status and
// driver assignment.
//
// Business rules:
//   - Pending and Searching jobs must not have a driver assigned
//   - jobs from DriverAssigned onwards must have a driver assigned
//   - terminal states other than Expired may carry a driver from before
//     the terminal transition
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	switch s {
	case Pending, Searching, Expired:
		if hasDriver {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%s is not a valid status to have a driver", s))
		}
	case DriverAssigned, DriverEnRoute, ArrivedAtPickup,
		PackagePickedUp, InTransit, ArrivedAtDropoff, DeliveryCompleted:
		if !hasDriver {
			return errs.NewValueIsInvalidErrorWithCause("status",
				fmt.Errorf("%s is not a valid status to have no driver", s))
		}
	}
	return nil
}

// Assign transitions the status to DriverAssigned.
//
// Valid transitions:
//   - Pending -> DriverAssigned
//   - Searching -> DriverAssigned
//
// Returns:
//   - (DriverAssigned, nil) on valid transition
//   - (StatusUnknown, error) if transition is not allowed from current status
//
// This method is used by Job.AssignDriver() to enforce state transitions.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return StatusUnknown, err
	}
	return DriverAssigned, nil
}

// Advance transitions the status one step along the delivery chain to next.
//
// The requested status must be the immediate successor of the current one:
// a job cannot reach ArrivedAtDropoff without passing PackagePickedUp first,
// and no transition leaves a terminal state.
//
// Returns:
//   - (next, nil) on valid transition
//   - (StatusUnknown, error) if the jump is not a single forward step
func (s Status) Advance(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewConflictError("advance status",
			fmt.Sprintf("%s is a terminal status", s))
	}
	if s.successor() != next {
		return StatusUnknown, errs.NewConflictError("advance status",
			fmt.Sprintf("%s is not reachable from %s", next, s))
	}
	return next, nil
}

// Terminate transitions the status to one of the terminal failure outcomes
// (Cancelled, Failed or Expired).
//
// Returns:
//   - (terminal, nil) when the current status is non-terminal
//   - (StatusUnknown, error) when the job already reached a terminal status
//     or terminal is not one of the failure outcomes
func (s Status) Terminate(terminal Status) (Status, error) {
	if terminal != Cancelled && terminal != Failed && terminal != Expired {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a terminal failure status", terminal))
	}
	if s.IsTerminal() {
		return StatusUnknown, errs.NewConflictError("terminate job",
			fmt.Sprintf("%s is a terminal status", s))
	}
	return terminal, nil
}
