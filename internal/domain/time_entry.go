package domain

import (
	"time"
)

// TimeEntry represents a recorded span of time worked on a task.
// Duration is in seconds, as reported by the service. TaskName is only
// populated when the service embeds the owning task in the response.
type TimeEntry struct {
	ID         int64
	TaskID     int64
	TaskName   string
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Duration   int64
	Comments   string
	InProgress bool
}

// IsRunning returns true if the time entry is still being recorded
func (te TimeEntry) IsRunning() bool {
	return te.InProgress
}

// Elapsed returns the recorded duration as a time.Duration
func (te TimeEntry) Elapsed() time.Duration {
	return time.Duration(te.Duration) * time.Second
}
