package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewServiceError creates a new service error for a failed remote operation.
// The status carries the HTTP status line reported by the service.
func NewServiceError(operation string, status string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeService,
		Message: fmt.Sprintf("%s: %s", operation, status),
		Code:    "SERVICE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
			"status":    status,
		},
	}
}

// NewTransportError creates a service error for a request that never
// produced a response (connection refused, DNS failure, etc.)
func NewTransportError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeService,
		Message: fmt.Sprintf("%s: request failed", operation),
		Code:    "TRANSPORT_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewDecodeError creates a new decode error for a response field that is
// missing or has the wrong shape
func NewDecodeError(field string, reason string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDecode,
		Message: fmt.Sprintf("cannot decode field %q: %s", field, reason),
		Code:    "DECODE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"field":  field,
			"reason": reason,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	appErr, ok := AsAppError(err)
	if !ok {
		return err.Error()
	}

	switch appErr.Type {
	case ErrorTypeValidation:
		return appErr.Message
	case ErrorTypeNotFound:
		return appErr.Message
	case ErrorTypeService:
		return fmt.Sprintf("the service reported an error: %s", appErr.Message)
	case ErrorTypeDecode:
		return fmt.Sprintf("unexpected response from the service: %s", appErr.Message)
	default:
		return appErr.Message
	}
}

// GetErrorCode returns the error code for structured errors
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}
