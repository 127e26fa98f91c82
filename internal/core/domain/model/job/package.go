package job

import (
	"errors"
	"fmt"

	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

// ErrPackageDetailsAreNotConstructed is returned when attempting to use an
// improperly initialized PackageDetails value.
var ErrPackageDetailsAreNotConstructed = errs.NewValueIsRequiredError(
	"package details must be created via NewPackageDetails constructor")

// Dimensions holds the physical size of a package in centimeters.
type Dimensions struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// Validate checks that all dimensions are positive.
func (d Dimensions) Validate() error {
	if d.LengthCm <= 0 || d.WidthCm <= 0 || d.HeightCm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("dimensions",
			fmt.Errorf("%.1fx%.1fx%.1f cm are not all greater than 0",
				d.LengthCm, d.WidthCm, d.HeightCm))
	}
	return nil
}

// PackageDetails is an immutable value object describing what a job
// delivers: the surcharge-driving package type plus the physical and
// handling attributes. Fixed at job creation.
type PackageDetails struct {
	packageType       PackageType
	description       string
	weightKg          float64
	dimensions        Dimensions
	estimatedValue    float64
	isFragile         bool
	requiresSignature bool
	contains          string

	guard guard.ConstructorGuard
}

// NewPackageDetails creates a PackageDetails value after validating the
// package type, weight and dimensions. Estimated value (for insurance) and
// contents description are optional; zero/empty mean not provided.
func NewPackageDetails(
	packageType PackageType,
	description string,
	weightKg float64,
	dimensions Dimensions,
	estimatedValue float64,
	isFragile, requiresSignature bool,
	contains string,
) (PackageDetails, error) {
	p := PackageDetails{
		isFragile:         isFragile,
		requiresSignature: requiresSignature,
		contains:          contains,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setPackageType(packageType),
		p.setDescription(description),
		p.setWeight(weightKg),
		p.setDimensions(dimensions),
		p.setEstimatedValue(estimatedValue),
	); err != nil {
		return PackageDetails{}, err
	}

	return p, nil
}

// Validate checks that the PackageDetails value was built via
// NewPackageDetails.
func (p PackageDetails) Validate() error {
	return p.guard.Validate(ErrPackageDetailsAreNotConstructed)
}

// Type returns the package type classification.
func (p PackageDetails) Type() PackageType {
	return p.packageType
}

// Description returns the customer-provided description.
func (p PackageDetails) Description() string {
	return p.description
}

// WeightKg returns the package weight in kilograms.
func (p PackageDetails) WeightKg() float64 {
	return p.weightKg
}

// Dimensions returns the physical size of the package.
func (p PackageDetails) Dimensions() Dimensions {
	return p.dimensions
}

// EstimatedValue returns the declared value for insurance purposes,
// zero when not provided.
func (p PackageDetails) EstimatedValue() float64 {
	return p.estimatedValue
}

// IsFragile reports whether the package requires special care.
func (p PackageDetails) IsFragile() bool {
	return p.isFragile
}

// RequiresSignature reports whether delivery needs a recipient signature.
func (p PackageDetails) RequiresSignature() bool {
	return p.requiresSignature
}

// Contains returns what is inside the package, empty when not provided.
func (p PackageDetails) Contains() string {
	return p.contains
}

func (p *PackageDetails) setPackageType(packageType PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}
	p.packageType = packageType
	return nil
}

func (p *PackageDetails) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *PackageDetails) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weightKg",
			fmt.Errorf("%.2f is not greater than 0", weightKg))
	}
	p.weightKg = weightKg
	return nil
}

func (p *PackageDetails) setDimensions(dimensions Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	p.dimensions = dimensions
	return nil
}

func (p *PackageDetails) setEstimatedValue(estimatedValue float64) error {
	if estimatedValue < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedValue",
			fmt.Errorf("%.2f is negative", estimatedValue))
	}
	p.estimatedValue = estimatedValue
	return nil
}
