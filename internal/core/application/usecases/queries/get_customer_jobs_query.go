package queries

import (
	"errors"
	"fmt"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"
	"sparrow/internal/pkg/guard"
)

var ErrGetCustomerJobsQueryIsNotConstructed = errors.New(
	"GetCustomerJobsQuery must be created via NewGetCustomerJobsQuery constructor",
)

// GetCustomerJobsQuery retrieves every job a customer has created,
// newest first.
type GetCustomerJobsQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewGetCustomerJobsQuery creates a query for a customer's job list.
func NewGetCustomerJobsQuery(customerID string) (GetCustomerJobsQuery, error) {
	if !kernel.ValidateIdent(customerID, kernel.KindUser) {
		return GetCustomerJobsQuery{}, errs.NewValueIsInvalidErrorWithCause("customerID",
			fmt.Errorf("%q is not a user identifier", customerID))
	}

	return GetCustomerJobsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerJobsQueryIsNotConstructed)
}

// CustomerID returns the customer whose jobs are requested.
func (q GetCustomerJobsQuery) CustomerID() string {
	return q.customerID
}
