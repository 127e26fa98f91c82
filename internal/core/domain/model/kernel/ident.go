package kernel

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"sparrow/internal/pkg/errs"
)

// EntityKind identifies which kind of entity an identifier belongs to.
// The set of kinds is closed: an identifier with an unrecognized prefix
// never parses.
type EntityKind int

const (
	// KindUnknown represents an invalid or undefined entity kind.
	// This value (0) helps catch uninitialized EntityKind values.
	KindUnknown EntityKind = iota

	// KindUser tags customer account identifiers.
	KindUser
	// KindDriver tags driver identifiers.
	KindDriver
	// KindJob tags delivery job identifiers.
	KindJob
	// KindVehicle tags vehicle identifiers.
	KindVehicle
	// KindPayment tags payment identifiers.
	KindPayment
	// KindAddress tags saved address identifiers.
	KindAddress
	// KindNotification tags notification identifiers.
	KindNotification
	// KindSupportTicket tags support ticket identifiers.
	KindSupportTicket
	// KindVerification tags verification request identifiers.
	KindVerification
	// KindReward tags reward identifiers.
	KindReward
)

const (
	datePartWidth = 6
	suffixWidth   = 5

	hexChars   = "0123456789abcdef"
	alnumChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// trackingPrefix replaces the "job-" tag when deriving the customer-facing
	// tracking code from a job identifier.
	trackingPrefix = "GH"
)

func kindPrefixes() map[EntityKind]string {
	return map[EntityKind]string{
		KindUser:          "usr",
		KindDriver:        "drv",
		KindJob:           "job",
		KindVehicle:       "veh",
		KindPayment:       "pay",
		KindAddress:       "add",
		KindNotification:  "not",
		KindSupportTicket: "tic",
		KindVerification:  "ver",
		KindReward:        "rew",
	}
}

func kindByPrefix(prefix string) EntityKind {
	for kind, p := range kindPrefixes() {
		if p == prefix {
			return kind
		}
	}
	return KindUnknown
}

// Prefix returns the short fixed tag embedded in identifiers of this kind,
// or an empty string for KindUnknown.
func (k EntityKind) Prefix() string {
	return kindPrefixes()[k]
}

// String implements fmt.Stringer using the identifier prefix.
func (k EntityKind) String() string {
	if p := k.Prefix(); p != "" {
		return p
	}
	return "unknown"
}

// Validate checks that the kind is one of the closed set of entity kinds.
func (k EntityKind) Validate() error {
	if _, ok := kindPrefixes()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("entity kind",
			fmt.Errorf("%d is not a known entity kind", k))
	}
	return nil
}

// GenerateIdent mints a new identifier of the given kind dated today (UTC).
//
// Identifiers have the form "{prefix}-{YYMMDD}-{suffix}" where the 5-character
// suffix mixes lowercase hexadecimal and mixed-case alphanumeric characters.
// The suffix space (~10^8 per day and kind) is treated as collision resistant
// for this domain; callers must not assume cryptographic uniqueness.
func GenerateIdent(kind EntityKind) (string, error) {
	return GenerateIdentAt(kind, time.Now().UTC())
}

// GenerateIdentAt mints an identifier with an explicit timestamp. Injecting a
// fixed timestamp is how tests obtain deterministic date parts; the random
// suffix is never mocked.
func GenerateIdentAt(kind EntityKind, at time.Time) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}

	datePart := at.UTC().Format("060102")
	return fmt.Sprintf("%s-%s-%s", kind.Prefix(), datePart, randomSuffix()), nil
}

// randomSuffix produces the 5-character suffix. Half the time the layout is
// 3 hex + 2 alphanumeric characters, otherwise 3 alphanumeric + 2 hex. The
// layout bias is diagnostic only and is never used for validation.
func randomSuffix() string {
	if rand.IntN(2) == 0 {
		return randomFrom(hexChars, 3) + randomFrom(alnumChars, 2)
	}
	return randomFrom(alnumChars, 3) + randomFrom(hexChars, 2)
}

func randomFrom(charset string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(charset[rand.IntN(len(charset))])
	}
	return b.String()
}

// ParsedIdent holds the components recovered from a well-formed identifier.
type ParsedIdent struct {
	Kind   EntityKind
	Year   int // four-digit year
	Month  int
	Day    int
	Suffix string
}

// CreatedAt returns midnight UTC of the date embedded in the identifier.
func (p ParsedIdent) CreatedAt() time.Time {
	return time.Date(p.Year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC)
}

// ParseIdent splits an identifier into its components, failing closed on any
// structural defect: wrong part count, unknown prefix, wrong field widths,
// non-numeric date digits, or a month/day outside calendar ranges.
func ParseIdent(id string) (ParsedIdent, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return ParsedIdent{}, errs.NewValueIsInvalidErrorWithCause("identifier",
			fmt.Errorf("%q does not have three dash-separated parts", id))
	}

	prefix, datePart, suffix := parts[0], parts[1], parts[2]

	kind := kindByPrefix(prefix)
	if kind == KindUnknown {
		return ParsedIdent{}, errs.NewValueIsInvalidErrorWithCause("identifier",
			fmt.Errorf("unknown entity prefix %q", prefix))
	}

	if len(datePart) != datePartWidth || len(suffix) != suffixWidth {
		return ParsedIdent{}, errs.NewValueIsInvalidErrorWithCause("identifier",
			fmt.Errorf("%q has wrong field widths", id))
	}

	// Atoi alone would admit a leading sign.
	for _, c := range datePart {
		if c < '0' || c > '9' {
			return ParsedIdent{}, errs.NewValueIsInvalidErrorWithCause("identifier",
				fmt.Errorf("%q has a non-numeric date field", id))
		}
	}

	year, err := strconv.Atoi(datePart[0:2])
	if err != nil {
		return ParsedIdent{}, errs.NewValueIsInvalidErrorWithCause("identifier", err)
	}
	month, err := strconv.Atoi(datePart[2:4])
	if err != nil {
		return ParsedIdent{}, errs.NewValueIsInvalidErrorWithCause("identifier", err)
	}
	day, err := strconv.Atoi(datePart[4:6])
	if err != nil {
		return ParsedIdent{}, errs.NewValueIsInvalidErrorWithCause("identifier", err)
	}

	if month < 1 || month > 12 {
		return ParsedIdent{}, errs.NewValueIsOutOfRangeError("month", month, 1, 12)
	}
	if day < 1 || day > 31 {
		return ParsedIdent{}, errs.NewValueIsOutOfRangeError("day", day, 1, 31)
	}

	return ParsedIdent{
		Kind:   kind,
		Year:   2000 + year,
		Month:  month,
		Day:    day,
		Suffix: suffix,
	}, nil
}

// ValidateIdent reports whether id is structurally valid. When expectedKind is
// not KindUnknown the identifier's type tag must match it as well.
func ValidateIdent(id string, expectedKind EntityKind) bool {
	parsed, err := ParseIdent(id)
	if err != nil {
		return false
	}
	if expectedKind == KindUnknown {
		return true
	}
	return parsed.Kind == expectedKind
}

// IsIdentRecent reports whether the identifier's embedded creation date is at
// most maxAgeDays old relative to now.
func IsIdentRecent(id string, maxAgeDays int, now time.Time) (bool, error) {
	parsed, err := ParseIdent(id)
	if err != nil {
		return false, err
	}

	age := now.UTC().Sub(parsed.CreatedAt())
	return int(age.Hours()/24) <= maxAgeDays, nil
}

// TrackingCode derives the customer-facing tracking code from a job
// identifier by swapping the "job-" tag for the tracking prefix. The
// derivation is deterministic; a tracking code is never regenerated.
func TrackingCode(jobID string) (string, error) {
	if !ValidateIdent(jobID, KindJob) {
		return "", errs.NewValueIsInvalidErrorWithCause("jobID",
			fmt.Errorf("%q is not a job identifier", jobID))
	}
	return trackingPrefix + strings.TrimPrefix(jobID, KindJob.Prefix()+"-"), nil
}
