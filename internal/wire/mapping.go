package wire

import (
	"fmt"
	"time"

	"slimtimer/internal/errors"
)

// Mapping is a generic decoded wire mapping. Typed accessors lift fields
// out of it, failing with a decode error that names the offending field
// rather than substituting defaults.
type Mapping map[string]interface{}

// Has returns true if the field is present with a non-nil value
func (m Mapping) Has(field string) bool {
	value, ok := m[field]
	return ok && value != nil
}

// Int returns the named field as an int64
func (m Mapping) Int(field string) (int64, error) {
	value, ok := m[field]
	if !ok {
		return 0, errors.NewDecodeError(field, "missing required field", nil)
	}
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, errors.NewDecodeError(field, fmt.Sprintf("expected integer, got %T", value), nil)
	}
}

// String returns the named field as a string
func (m Mapping) String(field string) (string, error) {
	value, ok := m[field]
	if !ok {
		return "", errors.NewDecodeError(field, "missing required field", nil)
	}
	s, ok := value.(string)
	if !ok {
		return "", errors.NewDecodeError(field, fmt.Sprintf("expected string, got %T", value), nil)
	}
	return s, nil
}

// OptionalString returns the named field as a string, or "" when absent
func (m Mapping) OptionalString(field string) (string, error) {
	if !m.Has(field) {
		return "", nil
	}
	return m.String(field)
}

// Float returns the named field as a float64. Integer values are widened,
// since the decoder renders whole numbers as integers.
func (m Mapping) Float(field string) (float64, error) {
	value, ok := m[field]
	if !ok {
		return 0, errors.NewDecodeError(field, "missing required field", nil)
	}
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, errors.NewDecodeError(field, fmt.Sprintf("expected number, got %T", value), nil)
	}
}

// Bool returns the named field as a bool, defaulting to false when absent
func (m Mapping) Bool(field string) (bool, error) {
	if !m.Has(field) {
		return false, nil
	}
	b, ok := m[field].(bool)
	if !ok {
		return false, errors.NewDecodeError(field, fmt.Sprintf("expected boolean, got %T", m[field]), nil)
	}
	return b, nil
}

// Time returns the named field as a time.Time
func (m Mapping) Time(field string) (time.Time, error) {
	value, ok := m[field]
	if !ok {
		return time.Time{}, errors.NewDecodeError(field, "missing required field", nil)
	}
	return CoerceTimestamp(value, field)
}

// OptionalTime returns the named field as a *time.Time, nil when absent
func (m Mapping) OptionalTime(field string) (*time.Time, error) {
	if !m.Has(field) {
		return nil, nil
	}
	return OptionalTimestamp(m[field], field)
}

// Nested returns the named field as a nested Mapping, nil when absent
func (m Mapping) Nested(field string) (Mapping, error) {
	if !m.Has(field) {
		return nil, nil
	}
	nested, ok := m[field].(map[string]interface{})
	if !ok {
		return nil, errors.NewDecodeError(field, fmt.Sprintf("expected mapping, got %T", m[field]), nil)
	}
	return Mapping(nested), nil
}

// AsMapping converts a decoded response node into a Mapping
func AsMapping(node interface{}, context string) (Mapping, error) {
	m, ok := node.(map[string]interface{})
	if !ok {
		return nil, errors.NewDecodeError(context, fmt.Sprintf("expected mapping response, got %T", node), nil)
	}
	return Mapping(m), nil
}

// AsSequence converts a decoded response node into a sequence of Mappings.
// A nil node (empty response body) decodes as an empty sequence.
func AsSequence(node interface{}, context string) ([]Mapping, error) {
	if node == nil {
		return nil, nil
	}
	seq, ok := node.([]interface{})
	if !ok {
		return nil, errors.NewDecodeError(context, fmt.Sprintf("expected sequence response, got %T", node), nil)
	}
	mappings := make([]Mapping, len(seq))
	for i, element := range seq {
		m, err := AsMapping(element, fmt.Sprintf("%s[%d]", context, i))
		if err != nil {
			return nil, err
		}
		mappings[i] = m
	}
	return mappings, nil
}
