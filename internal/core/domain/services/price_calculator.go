package services

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
)

// Tariff holds every monetary constant and rate the price calculator uses.
// Rates are configuration, not code: a deployment swaps fares without
// touching the lifecycle engine.
type Tariff struct {
	// BaseFares is the base fare per priority tier.
	BaseFares map[job.Priority]float64

	// PerKmRate is the distance fare per kilometer.
	PerKmRate float64

	// PerMinuteRate is the time fare per estimated minute.
	PerMinuteRate float64

	// PackageSurcharges is the flat surcharge per package type.
	PackageSurcharges map[job.PackageType]float64

	// PrioritySurcharges is the flat surcharge per priority tier.
	PrioritySurcharges map[job.Priority]float64

	// ServiceFeeRate is the platform fee as a fraction of the subtotal.
	ServiceFeeRate float64

	// TaxRate is the tax as a fraction of the subtotal.
	TaxRate float64

	// AverageSpeedKmh converts distance into a duration estimate.
	AverageSpeedKmh float64

	// Currency is the ISO code stamped on every breakdown.
	Currency string
}

// DefaultTariff returns the Ghana market tariff.
func DefaultTariff() Tariff {
	return Tariff{
		BaseFares: map[job.Priority]float64{
			job.Standard:  15.0,
			job.Express:   25.0,
			job.SameDay:   40.0,
			job.Emergency: 60.0,
		},
		PerKmRate:     2.5,
		PerMinuteRate: 0.2,
		PackageSurcharges: map[job.PackageType]float64{
			job.Document:      0.0,
			job.SmallPackage:  5.0,
			job.MediumPackage: 10.0,
			job.LargePackage:  20.0,
			job.ExtraLarge:    40.0,
			job.Food:          8.0,
			job.Grocery:       15.0,
			job.Pharmacy:      5.0,
			job.Electronics:   15.0,
			job.Fragile:       12.0,
		},
		PrioritySurcharges: map[job.Priority]float64{
			job.Standard:  0.0,
			job.Express:   10.0,
			job.SameDay:   25.0,
			job.Emergency: 50.0,
		},
		ServiceFeeRate:  0.10,
		TaxRate:         0.03,
		AverageSpeedKmh: 30.0,
		Currency:        "GHS",
	}
}

// Validate checks that the tariff covers every priority tier and package
// type and that all rates are usable.
func (t Tariff) Validate() error {
	var errsList []error

	for _, priority := range []job.Priority{job.Standard, job.Express, job.SameDay, job.Emergency} {
		if _, ok := t.BaseFares[priority]; !ok {
			errsList = append(errsList, errs.NewValueIsRequiredErrorWithCause("baseFares",
				fmt.Errorf("no base fare for priority %s", priority)))
		}
		if _, ok := t.PrioritySurcharges[priority]; !ok {
			errsList = append(errsList, errs.NewValueIsRequiredErrorWithCause("prioritySurcharges",
				fmt.Errorf("no surcharge for priority %s", priority)))
		}
	}

	for _, packageType := range []job.PackageType{
		job.Document, job.SmallPackage, job.MediumPackage, job.LargePackage,
		job.ExtraLarge, job.Food, job.Grocery, job.Pharmacy, job.Electronics, job.Fragile,
	} {
		if _, ok := t.PackageSurcharges[packageType]; !ok {
			errsList = append(errsList, errs.NewValueIsRequiredErrorWithCause("packageSurcharges",
				fmt.Errorf("no surcharge for package type %s", packageType)))
		}
	}

	if t.PerKmRate < 0 || t.PerMinuteRate < 0 || t.ServiceFeeRate < 0 || t.TaxRate < 0 {
		errsList = append(errsList, errs.NewValueIsInvalidError("tariff rates"))
	}
	if t.AverageSpeedKmh <= 0 {
		errsList = append(errsList, errs.NewValueIsInvalidErrorWithCause("averageSpeedKmh",
			fmt.Errorf("%.1f is not greater than 0", t.AverageSpeedKmh)))
	}
	if t.Currency == "" {
		errsList = append(errsList, errs.NewValueIsRequiredError("currency"))
	}

	return errors.Join(errsList...)
}

// Estimate is the output of one pricing pass: the fare breakdown plus the
// distance and duration it was computed from.
type Estimate struct {
	Pricing     job.Pricing
	DistanceKm  float64
	DurationMin int
}

// PriceCalculator is a pure domain service computing distance, duration and
// the fare breakdown for a delivery. It performs no I/O and is fully
// deterministic: identical inputs always produce identical output, whether
// the caller wants a stand-alone quote or a fare persisted into a job.
//
// The breakdown is computed in a fixed order: base fare, distance fare,
// time fare, package surcharge, priority surcharge, then subtotal, service
// fee, tax and total. Reordering would change floating point rounding.
type PriceCalculator struct {
	tariff Tariff
}

// NewPriceCalculator creates a PriceCalculator with the given tariff.
func NewPriceCalculator(tariff Tariff) (PriceCalculator, error) {
	if err := tariff.Validate(); err != nil {
		return PriceCalculator{}, err
	}
	return PriceCalculator{tariff: tariff}, nil
}

// Tariff returns the tariff the calculator prices with.
func (c PriceCalculator) Tariff() Tariff {
	return c.tariff
}

// DistanceKm returns the great-circle distance between pickup and dropoff.
func (c PriceCalculator) DistanceKm(pickup, dropoff kernel.Coordinates) (float64, error) {
	return pickup.DistanceKm(dropoff)
}

// DurationMin converts a distance into a travel time estimate at the
// tariff's average urban speed, truncated to whole minutes.
func (c PriceCalculator) DurationMin(distanceKm float64) int {
	return int(distanceKm / c.tariff.AverageSpeedKmh * 60)
}

// Calculate prices a delivery between pickup and dropoff.
//
// isEstimate marks the breakdown as a stand-alone quote; it changes nothing
// about the computation itself.
//
// Returns:
//   - Estimate: the breakdown plus the distance/duration inputs
//   - error: validation error for an invalid tier, package type or endpoint
func (c PriceCalculator) Calculate(
	pickup, dropoff kernel.Coordinates,
	priority job.Priority,
	packageType job.PackageType,
	isEstimate bool,
) (Estimate, error) {
	if err := errors.Join(priority.Validate(), packageType.Validate()); err != nil {
		return Estimate{}, err
	}

	distanceKm, err := c.DistanceKm(pickup, dropoff)
	if err != nil {
		return Estimate{}, err
	}
	durationMin := c.DurationMin(distanceKm)

	baseFare := c.tariff.BaseFares[priority]
	distanceFare := distanceKm * c.tariff.PerKmRate
	timeFare := float64(durationMin) * c.tariff.PerMinuteRate
	packageSurcharge := c.tariff.PackageSurcharges[packageType]
	prioritySurcharge := c.tariff.PrioritySurcharges[priority]

	subtotal := baseFare + distanceFare + timeFare + packageSurcharge + prioritySurcharge
	serviceFee := subtotal * c.tariff.ServiceFeeRate
	tax := subtotal * c.tariff.TaxRate
	total := subtotal + serviceFee + tax

	pricing, err := job.NewPricing(
		baseFare, distanceFare, timeFare,
		packageSurcharge, prioritySurcharge,
		serviceFee, tax, total,
		c.tariff.Currency, isEstimate,
	)
	if err != nil {
		return Estimate{}, err
	}

	return Estimate{
		Pricing:     pricing,
		DistanceKm:  distanceKm,
		DurationMin: durationMin,
	}, nil
}
