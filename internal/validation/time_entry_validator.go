package validation

import (
	"time"
)

// TimeEntryValidator provides validation for time-entry-related operations
type TimeEntryValidator struct {
	validator *Validator
}

// NewTimeEntryValidator creates a new time entry validator
func NewTimeEntryValidator() *TimeEntryValidator {
	return &TimeEntryValidator{
		validator: NewValidator(),
	}
}

// ValidateEntryID validates a time entry ID
func (tev *TimeEntryValidator) ValidateEntryID(id int64) error {
	if !tev.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("entry_id", id, "must be a positive integer")
		return validationError
	}
	return nil
}

// ValidateEntryForCreation validates the inputs for creating a time entry.
// The end bound is deliberately not checked against the start: the service
// is the source of truth for whether such an entry is acceptable, so a
// computed negative duration passes through as-is.
func (tev *TimeEntryValidator) ValidateEntryForCreation(taskID int64, startTime time.Time) error {
	validationError := NewValidationError()

	if !tev.validator.IsValidID(taskID) {
		validationError.AddInvalidValueError("task_id", taskID, "must be a positive integer")
	}

	if startTime.IsZero() {
		validationError.AddRequiredError("start_time")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
