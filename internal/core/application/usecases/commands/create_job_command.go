package commands

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// LocationSpec carries the raw endpoint fields of a job request before they
// are turned into a validated Location value object.
type LocationSpec struct {
	Latitude     float64
	Longitude    float64
	Address      string
	City         string
	Region       string
	Country      string
	PostalCode   string
	ContactName  string
	ContactPhone string
	Instructions string
}

// toLocation validates the spec into a Location value object.
func (s LocationSpec) toLocation() (job.Location, error) {
	coords, err := kernel.NewCoordinates(s.Latitude, s.Longitude)
	if err != nil {
		return job.Location{}, err
	}
	return job.NewLocation(coords, s.Address, s.City, s.Region, s.Country,
		s.PostalCode, s.ContactName, s.ContactPhone, s.Instructions)
}

// PackageSpec carries the raw package fields of a job request.
type PackageSpec struct {
	Type              job.PackageType
	Description       string
	WeightKg          float64
	LengthCm          float64
	WidthCm           float64
	HeightCm          float64
	EstimatedValue    float64
	IsFragile         bool
	RequiresSignature bool
	Contains          string
}

// toPackage validates the spec into a PackageDetails value object.
func (s PackageSpec) toPackage() (job.PackageDetails, error) {
	return job.NewPackageDetails(s.Type, s.Description, s.WeightKg,
		job.Dimensions{LengthCm: s.LengthCm, WidthCm: s.WidthCm, HeightCm: s.HeightCm},
		s.EstimatedValue, s.IsFragile, s.RequiresSignature, s.Contains)
}

// CreateJobCommand represents a request to create a new delivery job.
// Encapsulates the customer, both endpoints, the package and payment
// details. Pricing and identifiers are never part of the command; the
// handler computes them.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	customerID      string
	priority        job.Priority
	pickup          job.Location
	dropoff         job.Location
	pkg             job.PackageDetails
	paymentMethodID string
	notes           string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a new delivery job.
// Validates the customer identifier's type tag, the priority tier and both
// endpoint and package specs. Returns an error if any validation fails.
func NewCreateJobCommand(
	customerID string,
	priority job.Priority,
	pickup, dropoff LocationSpec,
	pkg PackageSpec,
	paymentMethodID, notes string,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPriority(priority),
		cmd.setPickup(pickup),
		cmd.setDropoff(dropoff),
		cmd.setPackage(pkg),
		cmd.setPaymentMethodID(paymentMethodID),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// CustomerID returns the identifier of the requesting customer.
func (c CreateJobCommand) CustomerID() string {
	return c.customerID
}

// Priority returns the requested delivery urgency class.
func (c CreateJobCommand) Priority() job.Priority {
	return c.priority
}

// Pickup returns the validated pickup location.
func (c CreateJobCommand) Pickup() job.Location {
	return c.pickup
}

// Dropoff returns the validated dropoff location.
func (c CreateJobCommand) Dropoff() job.Location {
	return c.dropoff
}

// Package returns the validated package details.
func (c CreateJobCommand) Package() job.PackageDetails {
	return c.pkg
}

// PaymentMethodID returns the customer's chosen payment method.
func (c CreateJobCommand) PaymentMethodID() string {
	return c.paymentMethodID
}

// Notes returns optional customer instructions.
func (c CreateJobCommand) Notes() string {
	return c.notes
}

func (c *CreateJobCommand) setCustomerID(customerID string) error {
	if !kernel.ValidateIdent(customerID, kernel.KindUser) {
		return errs.NewValueIsInvalidErrorWithCause("customerID",
			fmt.Errorf("%q is not a user identifier", customerID))
	}
	c.customerID = customerID
	return nil
}

func (c *CreateJobCommand) setPriority(priority job.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *CreateJobCommand) setPickup(spec LocationSpec) error {
	pickup, err := spec.toLocation()
	if err != nil {
		return err
	}
	c.pickup = pickup
	return nil
}

func (c *CreateJobCommand) setDropoff(spec LocationSpec) error {
	dropoff, err := spec.toLocation()
	if err != nil {
		return err
	}
	c.dropoff = dropoff
	return nil
}

func (c *CreateJobCommand) setPackage(spec PackageSpec) error {
	pkg, err := spec.toPackage()
	if err != nil {
		return err
	}
	c.pkg = pkg
	return nil
}

func (c *CreateJobCommand) setPaymentMethodID(paymentMethodID string) error {
	if paymentMethodID == "" {
		return errs.NewValueIsRequiredError("paymentMethodID")
	}
	c.paymentMethodID = paymentMethodID
	return nil
}
