package queries

import (
	"context"

	"sparrow/internal/core/domain/services"
)

// CalculateEstimateQueryHandler produces a fare quote for a prospective
// delivery. The quote is informational only; job creation reprices.
type CalculateEstimateQueryHandler struct {
	calculator services.PriceCalculator
}

// NewCalculateEstimateQueryHandler creates a handler for fare estimates.
func NewCalculateEstimateQueryHandler(calculator services.PriceCalculator) CalculateEstimateQueryHandler {
	return CalculateEstimateQueryHandler{calculator: calculator}
}

// Handle executes the query.
func (h CalculateEstimateQueryHandler) Handle(
	_ context.Context, query CalculateEstimateQuery) (services.Estimate, error) {
	if err := query.Validate(); err != nil {
		return services.Estimate{}, err
	}

	return h.calculator.Calculate(
		query.Pickup(), query.Dropoff(),
		query.Priority(), query.PackageType(),
		true,
	)
}
