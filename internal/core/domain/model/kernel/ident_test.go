package kernel_test

import (
	"regexp"
	"testing"
	"time"

	"sparrow/internal/core/domain/model/kernel"
	"sparrow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var identPattern = regexp.MustCompile(`^[a-z]{3}-\d{6}-[0-9A-Za-z]{5}$`)

func TestGenerateIdent(t *testing.T) {
	t.Run("should generate well-formed identifiers for every kind", func(t *testing.T) {
		kinds := []kernel.EntityKind{
			kernel.KindUser, kernel.KindDriver, kernel.KindJob, kernel.KindVehicle,
			kernel.KindPayment, kernel.KindAddress, kernel.KindNotification,
			kernel.KindSupportTicket, kernel.KindVerification, kernel.KindReward,
		}

		for _, kind := range kinds {
			id, err := kernel.GenerateIdent(kind)

			require.NoError(t, err)
			assert.Regexp(t, identPattern, id)
			assert.True(t, kernel.ValidateIdent(id, kind), "generated id %q should validate for its own kind", id)

			parsed, err := kernel.ParseIdent(id)
			require.NoError(t, err)
			assert.Equal(t, kind, parsed.Kind)
		}
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		_, err := kernel.GenerateIdent(kernel.KindUnknown)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should embed the supplied timestamp", func(t *testing.T) {
		at := time.Date(2023, 12, 7, 15, 4, 5, 0, time.UTC)

		id, err := kernel.GenerateIdentAt(kernel.KindDriver, at)

		require.NoError(t, err)
		assert.Contains(t, id, "drv-231207-")

		parsed, err := kernel.ParseIdent(id)
		require.NoError(t, err)
		assert.Equal(t, 2023, parsed.Year)
		assert.Equal(t, 12, parsed.Month)
		assert.Equal(t, 7, parsed.Day)
		assert.Len(t, parsed.Suffix, 5)
	})

	t.Run("suffix layouts stay within the two documented shapes", func(t *testing.T) {
		hexThenAlnum := regexp.MustCompile(`^[0-9a-f]{3}[0-9A-Za-z]{2}$`)
		alnumThenHex := regexp.MustCompile(`^[0-9A-Za-z]{3}[0-9a-f]{2}$`)

		for range 200 {
			id, err := kernel.GenerateIdent(kernel.KindJob)
			require.NoError(t, err)

			parsed, err := kernel.ParseIdent(id)
			require.NoError(t, err)

			matches := hexThenAlnum.MatchString(parsed.Suffix) || alnumThenHex.MatchString(parsed.Suffix)
			assert.True(t, matches, "suffix %q does not match either layout", parsed.Suffix)
		}
	})
}

func TestParseIdent(t *testing.T) {
	t.Run("should parse a valid identifier", func(t *testing.T) {
		parsed, err := kernel.ParseIdent("usr-231207-a1b2c")

		require.NoError(t, err)
		assert.Equal(t, kernel.KindUser, parsed.Kind)
		assert.Equal(t, 2023, parsed.Year)
		assert.Equal(t, 12, parsed.Month)
		assert.Equal(t, 7, parsed.Day)
		assert.Equal(t, "a1b2c", parsed.Suffix)
		assert.Equal(t, time.Date(2023, 12, 7, 0, 0, 0, 0, time.UTC), parsed.CreatedAt())
	})

	t.Run("should fail closed on malformed identifiers", func(t *testing.T) {
		cases := []struct {
			name string
			id   string
		}{
			{"wrong part count", "invalid-format"},
			{"empty string", ""},
			{"unknown prefix", "xyz-231207-a1b2c"},
			{"short date", "job-2312-a1b2c"},
			{"long date", "job-2312070-a1b2c"},
			{"short suffix", "job-231207-a1b2"},
			{"long suffix", "job-231207-a1b2c3"},
			{"non-numeric date", "job-23a207-a1b2c"},
			{"signed year field", "job-+10102-abcde"},
			{"signed month field", "job-24+102-abcde"},
			{"month thirteen", "job-231332-abcde"},
			{"month zero", "job-230012-abcde"},
			{"day zero", "job-231200-abcde"},
			{"day thirty-two", "job-231232-abcde"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.ParseIdent(tc.id)

				require.Error(t, err)
				assert.False(t, kernel.ValidateIdent(tc.id, kernel.KindUnknown))
			})
		}
	})
}

func TestValidateIdent(t *testing.T) {
	t.Run("should match the expected kind", func(t *testing.T) {
		assert.True(t, kernel.ValidateIdent("usr-231207-a1b2c", kernel.KindUser))
		assert.False(t, kernel.ValidateIdent("usr-231207-a1b2c", kernel.KindDriver))
	})

	t.Run("unknown expected kind accepts any valid identifier", func(t *testing.T) {
		assert.True(t, kernel.ValidateIdent("drv-240101-a1b2c", kernel.KindUnknown))
	})
}

func TestIsIdentRecent(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("identifier created yesterday is recent", func(t *testing.T) {
		recent, err := kernel.IsIdentRecent("job-240109-a1b2c", 7, now)

		require.NoError(t, err)
		assert.True(t, recent)
	})

	t.Run("identifier older than the window is not recent", func(t *testing.T) {
		recent, err := kernel.IsIdentRecent("job-231101-a1b2c", 30, now)

		require.NoError(t, err)
		assert.False(t, recent)
	})

	t.Run("malformed identifier is an error", func(t *testing.T) {
		_, err := kernel.IsIdentRecent("nope", 7, now)

		require.Error(t, err)
	})
}

func TestTrackingCode(t *testing.T) {
	t.Run("should derive code from job identifier", func(t *testing.T) {
		code, err := kernel.TrackingCode("job-231207-a1b2c")

		require.NoError(t, err)
		assert.Equal(t, "GH231207-a1b2c", code)
	})

	t.Run("derivation is deterministic", func(t *testing.T) {
		first, err := kernel.TrackingCode("job-231207-a1b2c")
		require.NoError(t, err)

		second, err := kernel.TrackingCode("job-231207-a1b2c")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should reject non-job identifiers", func(t *testing.T) {
		_, err := kernel.TrackingCode("drv-231207-a1b2c")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
