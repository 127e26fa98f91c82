package job

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
)

// AcceptanceWindow is how long a new job waits for a driver before it is
// eligible for expiry.
const AcceptanceWindow = 2 * time.Hour

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through the NewJob or RestoreJob factory methods. This ensures all
	// jobs are properly validated.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")
)

// Job represents one delivery order in the system. It is the aggregate root
// that manages the delivery lifecycle from creation through driver
// assignment to a terminal state.
//
// Job follows these invariants:
//   - must have a valid type-tagged identifier; the tracking code is derived
//     from it deterministically and never regenerated
//   - driver ID is empty until a driver is assigned and is never silently
//     overwritten once set
//   - status transitions follow the delivery chain; no transition leaves
//     a terminal state
//   - pricing is fixed at creation and never recomputed
//   - each lifecycle timestamp is set exactly once, the first time the
//     corresponding status is entered
//   - every mutation refreshes updatedAt and bumps the version stamp used
//     for conditional persistence writes
//
// The Job struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Job struct {
	id           string
	trackingCode string
	customerID   string
	driverID     string

	status   Status
	priority Priority

	pickup               Location
	dropoff              Location
	estimatedDistanceKm  float64
	estimatedDurationMin int

	pkg PackageDetails

	createdAt   time.Time
	acceptedAt  *time.Time
	pickupTime  *time.Time
	dropoffTime *time.Time
	cancelledAt *time.Time
	expiresAt   time.Time
	updatedAt   time.Time

	pricing         Pricing
	paymentMethodID string
	paymentStatus   PaymentStatus

	notes        string
	cancelReason string

	offeredToDrivers  []string
	rejectedByDrivers []string

	// version is the optimistic concurrency stamp. Persistence writes are
	// conditional on the stored version matching version-1.
	version int

	isConstructed bool
}

// NewJobParams carries the validated inputs for creating a Job.
type NewJobParams struct {
	ID              string
	CustomerID      string
	Priority        Priority
	Pickup          Location
	Dropoff         Location
	Package         PackageDetails
	Pricing         Pricing
	DistanceKm      float64
	DurationMin     int
	PaymentMethodID string
	Notes           string
	Now             time.Time
}

// NewJob creates a new Job in Pending status. This is the only way to create
// a valid Job, ensuring all business invariants are maintained.
//
// The job and customer identifiers must carry the correct type tags. The
// tracking code is derived from the job ID, the expiry deadline is set to
// Now plus the acceptance window, and the payment status starts Pending.
//
// Returns:
//   - *Job: the created job if all validations pass
//   - error: validation error if any parameter is invalid
func NewJob(params NewJobParams) (*Job, error) {
	now := params.Now.UTC()

	j := &Job{
		status:               Pending,
		paymentStatus:        PaymentPending,
		notes:                params.Notes,
		createdAt:            now,
		updatedAt:            now,
		expiresAt:            now.Add(AcceptanceWindow),
		estimatedDistanceKm:  params.DistanceKm,
		estimatedDurationMin: params.DurationMin,
		version:              1,
		isConstructed:        true,
	}

	if err := errors.Join(
		j.setID(params.ID),
		j.setCustomerID(params.CustomerID),
		j.setPriority(params.Priority),
		j.setLocations(params.Pickup, params.Dropoff),
		j.setPackage(params.Package),
		j.setPricing(params.Pricing),
		j.setEstimates(params.DistanceKm, params.DurationMin),
		j.setPaymentMethodID(params.PaymentMethodID),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJobParams carries the full persisted state of a Job.
type RestoreJobParams struct {
	ID              string
	TrackingCode    string
	CustomerID      string
	DriverID        string
	Status          Status
	Priority        Priority
	Pickup          Location
	Dropoff         Location
	DistanceKm      float64
	DurationMin     int
	Package         PackageDetails
	CreatedAt       time.Time
	AcceptedAt      *time.Time
	PickupTime      *time.Time
	DropoffTime     *time.Time
	CancelledAt     *time.Time
	ExpiresAt       time.Time
	UpdatedAt       time.Time
	Pricing         Pricing
	PaymentMethodID string
	PaymentStatus   PaymentStatus
	Notes           string
	CancelReason    string
	OfferedDrivers  []string
	RejectedDrivers []string
	Version         int
}

// RestoreJob rehydrates a Job from persisted state. It is intended for
// repository adapters only; it validates enum fields and structural
// consistency but trusts the stored timestamps and history lists.
func RestoreJob(params RestoreJobParams) (*Job, error) {
	if err := errors.Join(
		params.Status.Validate(),
		params.Priority.Validate(),
		params.PaymentStatus.Validate(),
		params.Pickup.Validate(),
		params.Dropoff.Validate(),
		params.Package.Validate(),
		params.Pricing.Validate(),
		params.Status.ValidateCanHaveDriver(params.DriverID != ""),
	); err != nil {
		return nil, err
	}
	if !kernel.ValidateIdent(params.ID, kernel.KindJob) {
		return nil, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%q is not a job identifier", params.ID))
	}
	if params.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			fmt.Errorf("%d is not a positive version", params.Version))
	}

	return &Job{
		id:                   params.ID,
		trackingCode:         params.TrackingCode,
		customerID:           params.CustomerID,
		driverID:             params.DriverID,
		status:               params.Status,
		priority:             params.Priority,
		pickup:               params.Pickup,
		dropoff:              params.Dropoff,
		estimatedDistanceKm:  params.DistanceKm,
		estimatedDurationMin: params.DurationMin,
		pkg:                  params.Package,
		createdAt:            params.CreatedAt,
		acceptedAt:           params.AcceptedAt,
		pickupTime:           params.PickupTime,
		dropoffTime:          params.DropoffTime,
		cancelledAt:          params.CancelledAt,
		expiresAt:            params.ExpiresAt,
		updatedAt:            params.UpdatedAt,
		pricing:              params.Pricing,
		paymentMethodID:      params.PaymentMethodID,
		paymentStatus:        params.PaymentStatus,
		notes:                params.Notes,
		cancelReason:         params.CancelReason,
		offeredToDrivers:     slices.Clone(params.OfferedDrivers),
		rejectedByDrivers:    slices.Clone(params.RejectedDrivers),
		version:              params.Version,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Job instance was properly constructed through NewJob
// or RestoreJob. This prevents bypassing validation by directly
// instantiating the struct.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id == other.id
}

// ID returns the job's unique identifier.
func (j *Job) ID() string {
	return j.id
}

// TrackingCode returns the customer-facing tracking code derived from
// the job ID.
func (j *Job) TrackingCode() string {
	return j.trackingCode
}

// CustomerID returns the identifier of the customer who created the job.
func (j *Job) CustomerID() string {
	return j.customerID
}

// DriverID returns the assigned driver's identifier, empty when
// no driver is assigned.
func (j *Job) DriverID() string {
	return j.driverID
}

// HasDriver reports whether a driver is assigned to the job.
func (j *Job) HasDriver() bool {
	return j.driverID != ""
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// Priority returns the delivery urgency class, fixed at creation.
func (j *Job) Priority() Priority {
	return j.priority
}

// Pickup returns the pickup location.
func (j *Job) Pickup() Location {
	return j.pickup
}

// Dropoff returns the dropoff location.
func (j *Job) Dropoff() Location {
	return j.dropoff
}

// EstimatedDistanceKm returns the great-circle pickup-to-dropoff distance
// computed at creation.
func (j *Job) EstimatedDistanceKm() float64 {
	return j.estimatedDistanceKm
}

// EstimatedDurationMin returns the travel time estimate computed at creation.
func (j *Job) EstimatedDurationMin() int {
	return j.estimatedDurationMin
}

// Package returns what the job delivers.
func (j *Job) Package() PackageDetails {
	return j.pkg
}

// CreatedAt returns when the job was created.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// AcceptedAt returns when a driver accepted the job, nil before assignment.
func (j *Job) AcceptedAt() *time.Time {
	return j.acceptedAt
}

// PickupTime returns when the package was collected, nil before pickup.
func (j *Job) PickupTime() *time.Time {
	return j.pickupTime
}

// DropoffTime returns when the package was delivered, nil before completion.
func (j *Job) DropoffTime() *time.Time {
	return j.dropoffTime
}

// CancelledAt returns when the job was cancelled, nil unless cancelled.
func (j *Job) CancelledAt() *time.Time {
	return j.cancelledAt
}

// ExpiresAt returns the deadline for driver acceptance.
func (j *Job) ExpiresAt() time.Time {
	return j.expiresAt
}

// UpdatedAt returns when the job was last mutated.
func (j *Job) UpdatedAt() time.Time {
	return j.updatedAt
}

// Pricing returns the fare breakdown fixed at creation.
func (j *Job) Pricing() Pricing {
	return j.pricing
}

// PaymentMethodID returns the customer's chosen payment method.
func (j *Job) PaymentMethodID() string {
	return j.paymentMethodID
}

// PaymentStatus returns the current payment flag.
func (j *Job) PaymentStatus() PaymentStatus {
	return j.paymentStatus
}

// Notes returns customer instructions, empty when not provided.
func (j *Job) Notes() string {
	return j.notes
}

// CancelReason returns why the job was cancelled, empty unless cancelled
// with a reason.
func (j *Job) CancelReason() string {
	return j.cancelReason
}

// OfferedToDrivers returns the append-only list of drivers the job was
// offered to.
func (j *Job) OfferedToDrivers() []string {
	return slices.Clone(j.offeredToDrivers)
}

// RejectedByDrivers returns the append-only list of drivers who declined
// the job. Matching excludes these drivers from re-offers.
func (j *Job) RejectedByDrivers() []string {
	return slices.Clone(j.rejectedByDrivers)
}

// Version returns the optimistic concurrency stamp. It starts at 1 and is
// bumped on every mutation.
func (j *Job) Version() int {
	return j.version
}

// IsDueForExpiry reports whether the job is still waiting for a driver past
// its acceptance deadline.
func (j *Job) IsDueForExpiry(now time.Time) bool {
	return (j.status == Pending || j.status == Searching) && !now.Before(j.expiresAt)
}

// AssignDriver assigns the job to a driver and moves it to DriverAssigned.
//
// This method enforces the following business rules:
//   - the driver ID must be a valid driver identifier
//   - the job must be in Pending or Searching status
//   - a job that already has a driver is never silently overwritten;
//     reassignment requires an explicit cancellation path
//
// On success the job records the acceptance time (exactly once), appends
// the driver to the offer history and bumps the version stamp.
func (j *Job) AssignDriver(driverID string, now time.Time) error {
	if !kernel.ValidateIdent(driverID, kernel.KindDriver) {
		return errs.NewValueIsInvalidErrorWithCause("driverID",
			fmt.Errorf("%q is not a driver identifier", driverID))
	}
	if j.driverID != "" {
		return errs.NewConflictError("assign driver",
			fmt.Sprintf("job %s already has driver %s assigned", j.id, j.driverID))
	}

	newStatus, err := j.status.Assign()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.driverID = driverID
	if j.acceptedAt == nil {
		at := now.UTC()
		j.acceptedAt = &at
	}
	j.MarkOffered(driverID)
	j.touch(now)
	return nil
}

// Advance moves the job one step along the delivery chain to next.
//
// Milestone side effects:
//   - PackagePickedUp records the pickup time (exactly once)
//   - DeliveryCompleted records the dropoff time and drives the payment
//     status to Paid
//
// A step into DriverAssigned or beyond requires a driver; drivers are
// attached via AssignDriver, never by a bare status update.
func (j *Job) Advance(next Status, now time.Time) error {
	if next >= DriverAssigned && !next.IsTerminal() && !j.HasDriver() {
		return errs.NewConflictError("advance status",
			fmt.Sprintf("job %s has no driver assigned", j.id))
	}

	newStatus, err := j.status.Advance(next)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.applyMilestone(now)
	j.touch(now)
	return nil
}

// Complete marks the job delivered, records the dropoff time and drives the
// payment status to Paid.
//
// This method enforces the following business rules:
//   - a driver must be assigned; completing a Pending job is a conflict
//   - the driver must already have confirmed arrival at the dropoff point;
//     completion never skips pickup or transit confirmation
func (j *Job) Complete(now time.Time) error {
	if !j.HasDriver() {
		return errs.NewConflictError("complete job",
			fmt.Sprintf("job %s has no driver assigned", j.id))
	}

	newStatus, err := j.status.Advance(DeliveryCompleted)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.applyMilestone(now)
	j.touch(now)
	return nil
}

// Cancel moves the job to Cancelled and records when and why.
// Cancelling a job in a terminal state is a conflict; the job is unchanged.
func (j *Job) Cancel(reason string, now time.Time) error {
	newStatus, err := j.status.Terminate(Cancelled)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.cancelReason = reason
	at := now.UTC()
	j.cancelledAt = &at
	j.touch(now)
	return nil
}

// Expire moves a job that found no driver before its deadline to Expired.
func (j *Job) Expire(now time.Time) error {
	if j.HasDriver() {
		return errs.NewConflictError("expire job",
			fmt.Sprintf("job %s has driver %s assigned", j.id, j.driverID))
	}

	newStatus, err := j.status.Terminate(Expired)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch(now)
	return nil
}

// Fail moves the job to Failed, recording the reason in the cancel reason
// field when provided.
func (j *Job) Fail(reason string, now time.Time) error {
	newStatus, err := j.status.Terminate(Failed)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.cancelReason = reason
	j.touch(now)
	return nil
}

// StartSearch moves a Pending job to Searching.
func (j *Job) StartSearch(now time.Time) error {
	newStatus, err := j.status.Advance(Searching)
	if err != nil {
		return err
	}

	j.status = newStatus
	j.touch(now)
	return nil
}

// MarkOffered appends a driver to the offer history. Duplicates are ignored.
func (j *Job) MarkOffered(driverID string) {
	if !slices.Contains(j.offeredToDrivers, driverID) {
		j.offeredToDrivers = append(j.offeredToDrivers, driverID)
	}
}

// MarkRejected appends a driver to the rejection history so matching never
// re-offers the job to them. Duplicates are ignored.
func (j *Job) MarkRejected(driverID string, now time.Time) {
	if !slices.Contains(j.rejectedByDrivers, driverID) {
		j.rejectedByDrivers = append(j.rejectedByDrivers, driverID)
		j.touch(now)
	}
}

// applyMilestone records the timestamp and payment side effects of entering
// the current status. Each timestamp is set exactly once.
func (j *Job) applyMilestone(now time.Time) {
	at := now.UTC()
	switch j.status {
	case PackagePickedUp:
		if j.pickupTime == nil {
			j.pickupTime = &at
		}
	case DeliveryCompleted:
		if j.dropoffTime == nil {
			j.dropoffTime = &at
		}
		j.paymentStatus = PaymentPaid
	}
}

// touch refreshes updatedAt and bumps the optimistic concurrency stamp.
func (j *Job) touch(now time.Time) {
	j.updatedAt = now.UTC()
	j.version++
}

func (j *Job) setID(id string) error {
	if !kernel.ValidateIdent(id, kernel.KindJob) {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%q is not a job identifier", id))
	}

	trackingCode, err := kernel.TrackingCode(id)
	if err != nil {
		return err
	}

	j.id = id
	j.trackingCode = trackingCode
	return nil
}

func (j *Job) setCustomerID(customerID string) error {
	if !kernel.ValidateIdent(customerID, kernel.KindUser) {
		return errs.NewValueIsInvalidErrorWithCause("customerID",
			fmt.Errorf("%q is not a user identifier", customerID))
	}
	j.customerID = customerID
	return nil
}

func (j *Job) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	j.priority = priority
	return nil
}

func (j *Job) setLocations(pickup, dropoff Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if err := dropoff.Validate(); err != nil {
		return err
	}
	j.pickup = pickup
	j.dropoff = dropoff
	return nil
}

func (j *Job) setPackage(pkg PackageDetails) error {
	if err := pkg.Validate(); err != nil {
		return err
	}
	j.pkg = pkg
	return nil
}

func (j *Job) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	j.pricing = pricing
	return nil
}

func (j *Job) setEstimates(distanceKm float64, durationMin int) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%.2f is negative", distanceKm))
	}
	if durationMin < 0 {
		return errs.NewValueIsInvalidErrorWithCause("durationMin",
			fmt.Errorf("%d is negative", durationMin))
	}
	j.estimatedDistanceKm = distanceKm
	j.estimatedDurationMin = durationMin
	return nil
}

func (j *Job) setPaymentMethodID(paymentMethodID string) error {
	if paymentMethodID == "" {
		return errs.NewValueIsRequiredError("paymentMethodID")
	}
	j.paymentMethodID = paymentMethodID
	return nil
}
