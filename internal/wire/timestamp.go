package wire

import (
	"time"

	"slimtimer/internal/errors"
)

// FormatTimestamp formats a time.Time value as an RFC3339 string for the wire
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTimestamp parses an RFC3339 formatted time string from the wire
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// CoerceTimestamp converts a decoded wire value into a time.Time.
// The YAML decoder already resolves timestamp-shaped scalars into time.Time,
// so the value may arrive in either shape; coercion is idempotent.
func CoerceTimestamp(value interface{}, field string) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := ParseTimestamp(v)
		if err != nil {
			return time.Time{}, errors.NewDecodeError(field, "invalid timestamp", err)
		}
		return t, nil
	default:
		return time.Time{}, errors.NewDecodeError(field, "expected timestamp", nil)
	}
}

// OptionalTimestamp converts a decoded wire value into a *time.Time,
// mapping absence (nil) to nil rather than failing
func OptionalTimestamp(value interface{}, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := CoerceTimestamp(value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
