package domain

import (
	"time"
)

// Task represents a trackable unit of work owned by a user.
// Tasks are never mutated locally; updates go through the service and a
// fresh value is built from its response.
type Task struct {
	ID          int64
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Hours       float64
	CompletedOn *time.Time
}

// IsComplete returns true if the task has been marked complete
func (t Task) IsComplete() bool {
	return t.CompletedOn != nil
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
