package job

import (
	"errors"
	"fmt"

	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when attempting to use an
// improperly initialized Pricing value.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing must be created via NewPricing constructor")

// Pricing is the itemized fare breakdown of a job. It is computed once and
// never recomputed: a job's total is fixed at creation regardless of later
// lifecycle events.
//
// The breakdown components are:
//
//	subtotal = baseFare + distanceFare + timeFare + packageSurcharge + prioritySurcharge
//	total    = subtotal + serviceFee + tax
type Pricing struct {
	baseFare          float64
	distanceFare      float64
	timeFare          float64
	packageSurcharge  float64
	prioritySurcharge float64
	serviceFee        float64
	tax               float64
	total             float64
	currency          string
	isEstimate        bool

	guard guard.ConstructorGuard
}

// NewPricing creates a Pricing breakdown. All monetary components must be
// non-negative and the currency code is required. isEstimate marks a
// stand-alone quote as opposed to a fare persisted into a job; the two are
// otherwise computed identically.
func NewPricing(
	baseFare, distanceFare, timeFare float64,
	packageSurcharge, prioritySurcharge float64,
	serviceFee, tax, total float64,
	currency string,
	isEstimate bool,
) (Pricing, error) {
	p := Pricing{
		isEstimate: isEstimate,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setComponent("baseFare", baseFare, &p.baseFare),
		p.setComponent("distanceFare", distanceFare, &p.distanceFare),
		p.setComponent("timeFare", timeFare, &p.timeFare),
		p.setComponent("packageSurcharge", packageSurcharge, &p.packageSurcharge),
		p.setComponent("prioritySurcharge", prioritySurcharge, &p.prioritySurcharge),
		p.setComponent("serviceFee", serviceFee, &p.serviceFee),
		p.setComponent("tax", tax, &p.tax),
		p.setComponent("total", total, &p.total),
		p.setCurrency(currency),
	); err != nil {
		return Pricing{}, err
	}

	return p, nil
}

// Validate checks that the Pricing value was built via NewPricing.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// BaseFare returns the priority-tier base fare.
func (p Pricing) BaseFare() float64 {
	return p.baseFare
}

// DistanceFare returns the per-kilometer component.
func (p Pricing) DistanceFare() float64 {
	return p.distanceFare
}

// TimeFare returns the per-minute component.
func (p Pricing) TimeFare() float64 {
	return p.timeFare
}

// PackageSurcharge returns the package-type surcharge.
func (p Pricing) PackageSurcharge() float64 {
	return p.packageSurcharge
}

// PrioritySurcharge returns the priority-tier surcharge.
func (p Pricing) PrioritySurcharge() float64 {
	return p.prioritySurcharge
}

// ServiceFee returns the platform service fee.
func (p Pricing) ServiceFee() float64 {
	return p.serviceFee
}

// Tax returns the tax component.
func (p Pricing) Tax() float64 {
	return p.tax
}

// Total returns the final amount charged to the customer.
func (p Pricing) Total() float64 {
	return p.total
}

// Currency returns the ISO currency code of all components.
func (p Pricing) Currency() string {
	return p.currency
}

// IsEstimate reports whether this breakdown is a stand-alone quote rather
// than the fare fixed into a job at creation.
func (p Pricing) IsEstimate() bool {
	return p.isEstimate
}

func (p *Pricing) setComponent(name string, value float64, field *float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name,
			fmt.Errorf("%.2f is negative", value))
	}
	*field = value
	return nil
}

func (p *Pricing) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	p.currency = currency
	return nil
}
