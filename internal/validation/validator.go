package validation

import (
	"strings"
)

// Validator provides the base validation helpers shared by the
// entity-specific validators
type Validator struct{}

// NewValidator creates a new base validator
func NewValidator() *Validator {
	return &Validator{}
}

// TrimAndValidateString trims surrounding whitespace from a string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// IsNonEmptyString checks that a string has content after trimming
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks a string length against inclusive bounds
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(s)
	return length >= min && length <= max
}

// IsValidID checks that a resource identifier is a positive integer
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// IsValidEmail performs a minimal shape check on an email address.
// The service is the authority on deliverability; this only catches
// obviously malformed input before a request is built.
func (v *Validator) IsValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	at := strings.Index(trimmed, "@")
	return at > 0 && at < len(trimmed)-1
}
