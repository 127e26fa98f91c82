package job

import (
	"errors"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an
// improperly initialized Location value.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable value object describing one endpoint of a
// delivery: validated coordinates plus the address and contact metadata a
// driver needs on the ground. Jobs carry two of them, pickup and dropoff,
// fixed at creation.
type Location struct {
	coordinates  kernel.Coordinates
	address      string
	city         string
	region       string
	country      string
	postalCode   string
	contactName  string
	contactPhone string
	instructions string

	guard guard.ConstructorGuard
}

// NewLocation creates a Location after validating its parts. Coordinates
// must be properly constructed; address, city, contact name and contact
// phone are required. Region and country default from the deployment
// market when empty. Postal code and driver instructions are optional.
func NewLocation(
	coordinates kernel.Coordinates,
	address, city, region, country string,
	postalCode string,
	contactName, contactPhone string,
	instructions string,
) (Location, error) {
	l := Location{
		region:       region,
		country:      country,
		postalCode:   postalCode,
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setCoordinates(coordinates),
		l.setAddress(address),
		l.setCity(city),
		l.setContact(contactName, contactPhone),
	); err != nil {
		return Location{}, err
	}

	return l, nil
}

// Validate checks that the Location was built via NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Coordinates returns the geographic point of the location.
func (l Location) Coordinates() kernel.Coordinates {
	return l.coordinates
}

// Address returns the street address.
func (l Location) Address() string {
	return l.address
}

// City returns the city name.
func (l Location) City() string {
	return l.city
}

// Region returns the administrative region.
func (l Location) Region() string {
	return l.region
}

// Country returns the country name.
func (l Location) Country() string {
	return l.country
}

// PostalCode returns the postal code, empty when not provided.
func (l Location) PostalCode() string {
	return l.postalCode
}

// ContactName returns the on-site contact person.
func (l Location) ContactName() string {
	return l.contactName
}

// ContactPhone returns the on-site contact phone number.
func (l Location) ContactPhone() string {
	return l.contactPhone
}

// Instructions returns special instructions for the driver, empty when
// not provided.
func (l Location) Instructions() string {
	return l.instructions
}

func (l *Location) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	l.coordinates = coordinates
	return nil
}

func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}

func (l *Location) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	l.city = city
	return nil
}

func (l *Location) setContact(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("contactName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("contactPhone")
	}
	l.contactName = name
	l.contactPhone = phone
	return nil
}
