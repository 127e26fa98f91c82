package http

import (
	"time"

	"sparrow/internal/core/application/usecases/commands"
	"sparrow/internal/core/domain/model/job"
	"sparrow/internal/core/domain/services"
)

// ErrorResponse is the uniform error payload: a machine-readable error kind
// plus a human-readable message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// LocationRequest is one delivery endpoint in a job or estimate request.
type LocationRequest struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Region       string  `json:"region"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postal_code"`
	ContactName  string  `json:"contact_name"`
	ContactPhone string  `json:"contact_phone"`
	Instructions string  `json:"instructions"`
}

// PackageRequest describes the package being shipped.
type PackageRequest struct {
	Type              string  `json:"type"`
	Description       string  `json:"description"`
	WeightKg          float64 `json:"weight_kg"`
	LengthCm          float64 `json:"length_cm"`
	WidthCm           float64 `json:"width_cm"`
	HeightCm          float64 `json:"height_cm"`
	EstimatedValue    float64 `json:"estimated_value"`
	IsFragile         bool    `json:"is_fragile"`
	RequiresSignature bool    `json:"requires_signature"`
	Contains          string  `json:"contains"`
}

// CreateJobRequest is the body of POST /api/v1/jobs.
type CreateJobRequest struct {
	CustomerID      string          `json:"customer_id"`
	Priority        string          `json:"priority"`
	Pickup          LocationRequest `json:"pickup"`
	Dropoff         LocationRequest `json:"dropoff"`
	Package         PackageRequest  `json:"package"`
	PaymentMethodID string          `json:"payment_method_id"`
	Notes           string          `json:"notes"`
}

// EstimateRequest is the body of POST /api/v1/estimates.
type EstimateRequest struct {
	PickupLatitude   float64 `json:"pickup_latitude"`
	PickupLongitude  float64 `json:"pickup_longitude"`
	DropoffLatitude  float64 `json:"dropoff_latitude"`
	DropoffLongitude float64 `json:"dropoff_longitude"`
	Priority         string  `json:"priority"`
	PackageType      string  `json:"package_type"`
}

// AssignDriverRequest is the body of POST /api/v1/jobs/:id/assign.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// UpdateStatusRequest is the body of POST /api/v1/jobs/:id/status.
type UpdateStatusRequest struct {
	Status   string `json:"status"`
	DriverID string `json:"driver_id"`
}

// CancelJobRequest is the body of POST /api/v1/jobs/:id/cancel.
type CancelJobRequest struct {
	Reason string `json:"reason"`
}

// LocationResponse mirrors LocationRequest on the way out.
type LocationResponse struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Region       string  `json:"region"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postal_code,omitempty"`
	ContactName  string  `json:"contact_name"`
	ContactPhone string  `json:"contact_phone"`
	Instructions string  `json:"instructions,omitempty"`
}

// PackageResponse mirrors PackageRequest on the way out.
type PackageResponse struct {
	Type              string  `json:"type"`
	Description       string  `json:"description"`
	WeightKg          float64 `json:"weight_kg"`
	LengthCm          float64 `json:"length_cm"`
	WidthCm           float64 `json:"width_cm"`
	HeightCm          float64 `json:"height_cm"`
	EstimatedValue    float64 `json:"estimated_value"`
	IsFragile         bool    `json:"is_fragile"`
	RequiresSignature bool    `json:"requires_signature"`
	Contains          string  `json:"contains,omitempty"`
}

// PricingResponse is the fare breakdown in job and estimate responses.
type PricingResponse struct {
	BaseFare          float64 `json:"base_fare"`
	DistanceFare      float64 `json:"distance_fare"`
	TimeFare          float64 `json:"time_fare"`
	PackageSurcharge  float64 `json:"package_surcharge"`
	PrioritySurcharge float64 `json:"priority_surcharge"`
	ServiceFee        float64 `json:"service_fee"`
	Tax               float64 `json:"tax"`
	Total             float64 `json:"total"`
	Currency          string  `json:"currency"`
	IsEstimate        bool    `json:"is_estimate"`
}

// JobResponse is the full job representation returned by every job endpoint.
type JobResponse struct {
	ID                   string           `json:"id"`
	TrackingCode         string           `json:"tracking_code"`
	CustomerID           string           `json:"customer_id"`
	DriverID             string           `json:"driver_id,omitempty"`
	Status               string           `json:"status"`
	Priority             string           `json:"priority"`
	Pickup               LocationResponse `json:"pickup"`
	Dropoff              LocationResponse `json:"dropoff"`
	EstimatedDistanceKm  float64          `json:"estimated_distance_km"`
	EstimatedDurationMin int              `json:"estimated_duration_min"`
	Package              PackageResponse  `json:"package"`
	Pricing              PricingResponse  `json:"pricing"`
	PaymentMethodID      string           `json:"payment_method_id"`
	PaymentStatus        string           `json:"payment_status"`
	Notes                string           `json:"notes,omitempty"`
	CancelReason         string           `json:"cancel_reason,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	ExpiresAt            time.Time        `json:"expires_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
	AcceptedAt           *time.Time       `json:"accepted_at,omitempty"`
	PickupTime           *time.Time       `json:"pickup_time,omitempty"`
	DropoffTime          *time.Time       `json:"dropoff_time,omitempty"`
	CancelledAt          *time.Time       `json:"cancelled_at,omitempty"`
	Version              int              `json:"version"`
}

// EstimateResponse is the body returned by POST /api/v1/estimates.
type EstimateResponse struct {
	Pricing     PricingResponse `json:"pricing"`
	DistanceKm  float64         `json:"distance_km"`
	DurationMin int             `json:"duration_min"`
}

// DriverCandidatesResponse lists dispatch candidates for a job.
type DriverCandidatesResponse struct {
	JobID     string   `json:"job_id"`
	DriverIDs []string `json:"driver_ids"`
}

func toLocationSpec(req LocationRequest) commands.LocationSpec {
	return commands.LocationSpec{
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Address:      req.Address,
		City:         req.City,
		Region:       req.Region,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Instructions: req.Instructions,
	}
}

func toLocationResponse(loc job.Location) LocationResponse {
	return LocationResponse{
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

func toPricingResponse(pricing job.Pricing) PricingResponse {
	return PricingResponse{
		BaseFare:          pricing.BaseFare(),
		DistanceFare:      pricing.DistanceFare(),
		TimeFare:          pricing.TimeFare(),
		PackageSurcharge:  pricing.PackageSurcharge(),
		PrioritySurcharge: pricing.PrioritySurcharge(),
		ServiceFee:        pricing.ServiceFee(),
		Tax:               pricing.Tax(),
		Total:             pricing.Total(),
		Currency:          pricing.Currency(),
		IsEstimate:        pricing.IsEstimate(),
	}
}

func toJobResponse(aggregate *job.Job) JobResponse {
	pkg := aggregate.Package()

	return JobResponse{
		ID:                   aggregate.ID(),
		TrackingCode:         aggregate.TrackingCode(),
		CustomerID:           aggregate.CustomerID(),
		DriverID:             aggregate.DriverID(),
		Status:               aggregate.Status().String(),
		Priority:             aggregate.Priority().String(),
		Pickup:               toLocationResponse(aggregate.Pickup()),
		Dropoff:              toLocationResponse(aggregate.Dropoff()),
		EstimatedDistanceKm:  aggregate.EstimatedDistanceKm(),
		EstimatedDurationMin: aggregate.EstimatedDurationMin(),
		Package: PackageResponse{
			Type:              pkg.Type().String(),
			Description:       pkg.Description(),
			WeightKg:          pkg.WeightKg(),
			LengthCm:          pkg.Dimensions().LengthCm,
			WidthCm:           pkg.Dimensions().WidthCm,
			HeightCm:          pkg.Dimensions().HeightCm,
			EstimatedValue:    pkg.EstimatedValue(),
			IsFragile:         pkg.IsFragile(),
			RequiresSignature: pkg.RequiresSignature(),
			Contains:          pkg.Contains(),
		},
		Pricing:         toPricingResponse(aggregate.Pricing()),
		PaymentMethodID: aggregate.PaymentMethodID(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		Notes:           aggregate.Notes(),
		CancelReason:    aggregate.CancelReason(),
		CreatedAt:       aggregate.CreatedAt(),
		ExpiresAt:       aggregate.ExpiresAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		AcceptedAt:      aggregate.AcceptedAt(),
		PickupTime:      aggregate.PickupTime(),
		DropoffTime:     aggregate.DropoffTime(),
		CancelledAt:     aggregate.CancelledAt(),
		Version:         aggregate.Version(),
	}
}

func toEstimateResponse(estimate services.Estimate) EstimateResponse {
	return EstimateResponse{
		Pricing:     toPricingResponse(estimate.Pricing),
		DistanceKm:  estimate.DistanceKm,
		DurationMin: estimate.DurationMin,
	}
}
