package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slimtimer/internal/errors"
)

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
	}{
		{
			name: "should round-trip a UTC timestamp",
			time: time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "should round-trip a zoned timestamp",
			time: time.Date(2026, 1, 2, 23, 59, 59, 0, time.FixedZone("CET", 3600)),
		},
		{
			name: "should round-trip the epoch",
			time: time.Unix(0, 0).UTC(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatted := FormatTimestamp(tt.time)
			parsed, err := ParseTimestamp(formatted)

			require.NoError(t, err)
			assert.True(t, parsed.Equal(tt.time), "expected %v, got %v", tt.time, parsed)
		})
	}
}

func TestCoerceTimestamp(t *testing.T) {
	reference := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		value          interface{}
		expected       time.Time
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:     "should pass through an already-decoded time value",
			value:    reference,
			expected: reference,
		},
		{
			name:     "should parse an RFC3339 string",
			value:    "2026-08-25T09:00:00Z",
			expected: reference,
		},
		{
			name:  "should fail on a malformed string",
			value: "yesterday",
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDecode))
				assert.Contains(t, err.Error(), "start_time")
			},
		},
		{
			name:  "should fail on a non-timestamp value",
			value: 12345,
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDecode))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CoerceTimestamp(tt.value, "start_time")

			if tt.errorAssertion != nil {
				tt.errorAssertion(t, err)
			} else {
				require.NoError(t, err)
				assert.True(t, result.Equal(tt.expected))
			}
		})
	}
}

func TestOptionalTimestamp(t *testing.T) {
	t.Run("should map absence to nil", func(t *testing.T) {
		result, err := OptionalTimestamp(nil, "completed_on")

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("should coerce a present value", func(t *testing.T) {
		result, err := OptionalTimestamp("2026-08-25T09:00:00Z", "completed_on")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, 2026, result.Year())
	})
}
