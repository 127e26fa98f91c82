package job

import (
	"fmt"

	"sparrow/internal/pkg/errs"
)

// Priority represents the delivery urgency class of a job. It is fixed at
// creation and drives both the base fare and the priority surcharge.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// Standard is normal delivery, within 24 hours.
	Standard
	// Express is fast delivery, within 4 hours.
	Express
	// SameDay is delivery on the same day.
	SameDay
	// Emergency is immediate delivery, within 1 hour.
	Emergency
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		Standard:  "Standard",
		Express:   "Express",
		SameDay:   "SameDay",
		Emergency: "Emergency",
	}
}

// PriorityFromString resolves a priority name back to its Priority value.
func PriorityFromString(name string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == name {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority", fmt.Errorf("%q is not a valid priority", name))
}

// Validate checks if the Priority value is one of the closed set of tiers.
func (p Priority) Validate() error {
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PackageType classifies what is being delivered. It is fixed at creation
// and drives the package surcharge.
type PackageType int

const (
	// PackageTypeUnknown represents an invalid or undefined package type.
	PackageTypeUnknown PackageType = iota

	// Document covers letters, documents and small envelopes.
	Document
	// SmallPackage covers small boxes up to 5 kg.
	SmallPackage
	// MediumPackage covers medium boxes between 5 and 15 kg.
	MediumPackage
	// LargePackage covers large boxes between 15 and 30 kg.
	LargePackage
	// ExtraLarge covers very large items above 30 kg.
	ExtraLarge
	// Food covers prepared food delivery.
	Food
	// Grocery covers grocery delivery.
	Grocery
	// Pharmacy covers medicine delivery.
	Pharmacy
	// Electronics covers sensitive electronics.
	Electronics
	// Fragile covers fragile items requiring special care.
	Fragile
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		Document:      "Document",
		SmallPackage:  "SmallPackage",
		MediumPackage: "MediumPackage",
		LargePackage:  "LargePackage",
		ExtraLarge:    "ExtraLarge",
		Food:          "Food",
		Grocery:       "Grocery",
		Pharmacy:      "Pharmacy",
		Electronics:   "Electronics",
		Fragile:       "Fragile",
	}
}

// PackageTypeFromString resolves a package type name back to its value.
func PackageTypeFromString(name string) (PackageType, error) {
	for packageType, str := range getPackageTypeStrings() {
		if str == name {
			return packageType, nil
		}
	}
	return PackageTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"packageType", fmt.Errorf("%q is not a valid package type", name))
}

// Validate checks if the PackageType value is one of the closed set.
func (p PackageType) Validate() error {
	if _, ok := getPackageTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packageType",
			fmt.Errorf("%d is not a valid package type", p))
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (p PackageType) String() string {
	if str, ok := getPackageTypeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PaymentStatus tracks the payment flag of a job. It advances independently
// of the delivery status but is driven to PaymentPaid on completion.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means payment has not been initiated.
	PaymentPending
	// PaymentAuthorized means funds are reserved but not captured.
	PaymentAuthorized
	// PaymentPaid means funds were captured.
	PaymentPaid
	// PaymentFailed means the capture attempt failed.
	PaymentFailed
	// PaymentRefunded means the full amount was returned.
	PaymentRefunded
	// PaymentPartiallyRefunded means part of the amount was returned.
	PaymentPartiallyRefunded
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentPending:           "Pending",
		PaymentAuthorized:        "Authorized",
		PaymentPaid:              "Paid",
		PaymentFailed:            "Failed",
		PaymentRefunded:          "Refunded",
		PaymentPartiallyRefunded: "PartiallyRefunded",
	}
}

// PaymentStatusFromString resolves a payment status name back to its value.
func PaymentStatusFromString(name string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", name))
}

// Validate checks if the PaymentStatus value is one of the closed set.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String implements the fmt.Stringer interface.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
