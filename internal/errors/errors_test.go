package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceError(t *testing.T) {
	t.Run("should carry the operation and status", func(t *testing.T) {
		err := NewServiceError("list tasks", "401 Unauthorized", nil)

		assert.True(t, err.IsType(ErrorTypeService))
		assert.Contains(t, err.Error(), "list tasks")
		assert.Contains(t, err.Error(), "401 Unauthorized")

		operation, ok := err.GetContext("operation")
		require.True(t, ok)
		assert.Equal(t, "list tasks", operation)
	})
}

func TestNewTransportError(t *testing.T) {
	t.Run("should wrap the underlying cause", func(t *testing.T) {
		cause := fmt.Errorf("connection refused")
		err := NewTransportError("login", cause)

		assert.True(t, err.IsType(ErrorTypeService))
		assert.ErrorIs(t, err, cause)
	})
}

func TestNewDecodeError(t *testing.T) {
	t.Run("should name the offending field", func(t *testing.T) {
		err := NewDecodeError("user_id", "missing required field", nil)

		assert.True(t, err.IsType(ErrorTypeDecode))
		assert.Contains(t, err.Error(), "user_id")
	})
}

func TestIsErrorType(t *testing.T) {
	t.Run("should match through wrapping", func(t *testing.T) {
		inner := NewNotFoundError("task", "7")
		wrapped := fmt.Errorf("fetching: %w", inner)

		assert.True(t, IsErrorType(wrapped, ErrorTypeNotFound))
		assert.False(t, IsErrorType(wrapped, ErrorTypeService))
	})

	t.Run("should not match a plain error", func(t *testing.T) {
		assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeService))
	})
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "should prefix service errors",
			err:      NewServiceError("login", "401 Unauthorized", nil),
			expected: "the service reported an error",
		},
		{
			name:     "should prefix decode errors",
			err:      NewDecodeError("id", "missing required field", nil),
			expected: "unexpected response",
		},
		{
			name:     "should pass plain errors through",
			err:      fmt.Errorf("boom"),
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, GetUserMessage(tt.err), tt.expected)
		})
	}
}
