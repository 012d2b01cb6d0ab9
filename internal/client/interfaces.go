package client

import (
	"context"
	"time"

	"slimtimer/internal/domain"
)

// API defines the interface for all authenticated task and time entry
// operations. It is implemented by Session; consumers depend on it so
// they can be tested against a mock.
type API interface {
	// Task operations
	ListTasks(ctx context.Context) ([]domain.Task, error)
	CreateTask(ctx context.Context, name string) (*domain.Task, error)
	GetTask(ctx context.Context, taskID int64) (*domain.Task, error)
	CompleteTask(ctx context.Context, taskID int64, completedOn time.Time) error
	DeleteTask(ctx context.Context, taskID int64) error

	// Time entry operations
	ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error)
	ListTaskEntries(ctx context.Context, taskID int64, filter domain.EntryFilter) ([]domain.TimeEntry, error)
	GetEntry(ctx context.Context, entryID int64) (*domain.TimeEntry, error)
	CreateEntry(ctx context.Context, taskID int64, startTime time.Time, endTime *time.Time) (*domain.TimeEntry, error)
	UpdateEntry(ctx context.Context, entryID, taskID int64, startTime, endTime time.Time) error
	DeleteEntry(ctx context.Context, entryID int64) error
}
