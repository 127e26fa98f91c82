// Package jobrepo persists job aggregates in PostgreSQL. It maps the
// aggregate to a flat row plus a side table for the customer and driver
// indices, and enforces conditional writes through the version column.
package jobrepo

import (
	"encoding/json"
	"time"

	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/model/kernel"
)

// JobDTO is the database row for one job aggregate.
type JobDTO struct {
	ID           string `gorm:"primaryKey;size:20"`
	TrackingCode string `gorm:"size:20;index"`
	CustomerID   string `gorm:"size:20;index"`
	DriverID     string `gorm:"size:20;index"`
	Status       int    `gorm:"index"`
	Priority     int

	Pickup  LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff LocationDTO `gorm:"embedded;embeddedPrefix:dropoff_"`

	DistanceKm  float64
	DurationMin int

	Package PackageDTO `gorm:"embedded;embeddedPrefix:package_"`
	Pricing PricingDTO `gorm:"embedded;embeddedPrefix:pricing_"`

	CreatedAt   time.Time
	AcceptedAt  *time.Time
	PickupTime  *time.Time
	DropoffTime *time.Time
	CancelledAt *time.Time
	ExpiresAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	PaymentMethodID string `gorm:"size:20"`
	PaymentStatus   int

	Notes        string
	CancelReason string

	// Offer history lists are serialized as JSON arrays.
	OfferedDrivers  string `gorm:"type:text"`
	RejectedDrivers string `gorm:"type:text"`

	Version int
}

// TableName overrides GORM's default naming to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// LocationDTO is the embedded column set for a pickup or dropoff point.
type LocationDTO struct {
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

// PackageDTO is the embedded column set for the package details.
type PackageDTO struct {
	Type              int
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

// PricingDTO is the embedded column set for the fare breakdown.
type PricingDTO struct {
	BaseFare          float64
	DistanceFare      float64
	TimeFare          float64
	PackageSurcharge  float64
	PrioritySurcharge float64
	ServiceFee        float64
	Tax               float64
	Total             float64
	Currency          string `gorm:"size:3"`
	IsEstimate        bool
}

// JobIndexDTO is one membership row in a customer or driver job index.
type JobIndexDTO struct {
	OwnerKind string `gorm:"primaryKey;size:10"`
	OwnerID   string `gorm:"primaryKey;size:20"`
	JobID     string `gorm:"primaryKey;size:20"`
}

// TableName overrides GORM's default naming to use "job_indices".
func (JobIndexDTO) TableName() string {
	return "job_indices"
}

const (
	ownerKindCustomer = "customer"
	ownerKindDriver   = "driver"
)

func locationFromDomain(loc job.Location) LocationDTO {
	return LocationDTO{
		Latitude:     loc.Coordinates().Latitude(),
		Longitude:    loc.Coordinates().Longitude(),
		Address:      loc.Address(),
		City:         loc.City(),
		Region:       loc.Region(),
		Country:      loc.Country(),
		PostalCode:   loc.PostalCode(),
		ContactName:  loc.ContactName(),
		ContactPhone: loc.ContactPhone(),
		Instructions: loc.Instructions(),
	}
}

func locationToDomain(dto LocationDTO) (job.Location, error) {
	coords, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return job.Location{}, err
	}

	return job.NewLocation(coords, dto.Address, dto.City, dto.Region,
		dto.Country, dto.PostalCode, dto.ContactName, dto.ContactPhone, dto.Instructions)
}

func marshalDrivers(ids []string) string {
	if len(ids) == 0 {
		return "[]"
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return "[]"
	}
	return string(raw)
}

func unmarshalDrivers(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// fromDomain converts a job aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	return JobDTO{
		ID:           aggregate.ID(),
		TrackingCode: aggregate.TrackingCode(),
		CustomerID:   aggregate.CustomerID(),
		DriverID:     aggregate.DriverID(),
		Status:       int(aggregate.Status()),
		Priority:     int(aggregate.Priority()),
		Pickup:       locationFromDomain(aggregate.Pickup()),
		Dropoff:      locationFromDomain(aggregate.Dropoff()),
		DistanceKm:   aggregate.EstimatedDistanceKm(),
		DurationMin:  aggregate.EstimatedDurationMin(),
		Package: PackageDTO{
			Type:              int(aggregate.Package().Type()),
			Description:       aggregate.Package().Description(),
			WeightKg:          aggregate.Package().WeightKg(),
			LengthCm:          aggregate.Package().Dimensions().LengthCm,
			WidthCm:           aggregate.Package().Dimensions().WidthCm,
			HeightCm:          aggregate.Package().Dimensions().HeightCm,
			EstimatedValue:    aggregate.Package().EstimatedValue(),
			IsFragile:         aggregate.Package().IsFragile(),
			RequiresSignature: aggregate.Package().RequiresSignature(),
			Contains:          aggregate.Package().Contains(),
		},
		Pricing: PricingDTO{
			BaseFare:          aggregate.Pricing().BaseFare(),
			DistanceFare:      aggregate.Pricing().DistanceFare(),
			TimeFare:          aggregate.Pricing().TimeFare(),
			PackageSurcharge:  aggregate.Pricing().PackageSurcharge(),
			PrioritySurcharge: aggregate.Pricing().PrioritySurcharge(),
			ServiceFee:        aggregate.Pricing().ServiceFee(),
			Tax:               aggregate.Pricing().Tax(),
			Total:             aggregate.Pricing().Total(),
			Currency:          aggregate.Pricing().Currency(),
			IsEstimate:        aggregate.Pricing().IsEstimate(),
		},
		CreatedAt:       aggregate.CreatedAt(),
		AcceptedAt:      aggregate.AcceptedAt(),
		PickupTime:      aggregate.PickupTime(),
		DropoffTime:     aggregate.DropoffTime(),
		CancelledAt:     aggregate.CancelledAt(),
		ExpiresAt:       aggregate.ExpiresAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		PaymentMethodID: aggregate.PaymentMethodID(),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		Notes:           aggregate.Notes(),
		CancelReason:    aggregate.CancelReason(),
		OfferedDrivers:  marshalDrivers(aggregate.OfferedToDrivers()),
		RejectedDrivers: marshalDrivers(aggregate.RejectedByDrivers()),
		Version:         aggregate.Version(),
	}
}

// toDomain converts a database row back to a job aggregate via RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	pickup, err := locationToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	dropoff, err := locationToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}

	pkg, err := job.NewPackageDetails(
		job.PackageType(dto.Package.Type),
		dto.Package.Description,
		dto.Package.WeightKg,
		job.Dimensions{
			LengthCm: dto.Package.LengthCm,
			WidthCm:  dto.Package.WidthCm,
			HeightCm: dto.Package.HeightCm,
		},
		dto.Package.EstimatedValue,
		dto.Package.IsFragile,
		dto.Package.RequiresSignature,
		dto.Package.Contains,
	)
	if err != nil {
		return nil, err
	}

	pricing, err := job.NewPricing(
		dto.Pricing.BaseFare, dto.Pricing.DistanceFare, dto.Pricing.TimeFare,
		dto.Pricing.PackageSurcharge, dto.Pricing.PrioritySurcharge,
		dto.Pricing.ServiceFee, dto.Pricing.Tax, dto.Pricing.Total,
		dto.Pricing.Currency, dto.Pricing.IsEstimate,
	)
	if err != nil {
		return nil, err
	}

	offered, err := unmarshalDrivers(dto.OfferedDrivers)
	if err != nil {
		return nil, err
	}

	rejected, err := unmarshalDrivers(dto.RejectedDrivers)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(job.RestoreJobParams{
		ID:              dto.ID,
		TrackingCode:    dto.TrackingCode,
		CustomerID:      dto.CustomerID,
		DriverID:        dto.DriverID,
		Status:          job.Status(dto.Status),
		Priority:        job.Priority(dto.Priority),
		Pickup:          pickup,
		Dropoff:         dropoff,
		DistanceKm:      dto.DistanceKm,
		DurationMin:     dto.DurationMin,
		Package:         pkg,
		CreatedAt:       dto.CreatedAt,
		AcceptedAt:      dto.AcceptedAt,
		PickupTime:      dto.PickupTime,
		DropoffTime:     dto.DropoffTime,
		CancelledAt:     dto.CancelledAt,
		ExpiresAt:       dto.ExpiresAt,
		UpdatedAt:       dto.UpdatedAt,
		Pricing:         pricing,
		PaymentMethodID: dto.PaymentMethodID,
		PaymentStatus:   job.PaymentStatus(dto.PaymentStatus),
		Notes:           dto.Notes,
		CancelReason:    dto.CancelReason,
		OfferedDrivers:  offered,
		RejectedDrivers: rejected,
		Version:         dto.Version,
	})
}
