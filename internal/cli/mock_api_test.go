package cli

import (
	"context"
	"fmt"
	"time"

	"slimtimer/internal/domain"
	"slimtimer/internal/errors"
)

// mockAPI implements the client.API interface for testing
type mockAPI struct {
	tasks       map[int64]*domain.Task
	entries     map[int64]*domain.TimeEntry
	nextTaskID  int64
	nextEntryID int64
	lastFilter  domain.EntryFilter
}

// newMockAPI creates a new mock API instance
func newMockAPI() *mockAPI {
	return &mockAPI{
		tasks:       make(map[int64]*domain.Task),
		entries:     make(map[int64]*domain.TimeEntry),
		nextTaskID:  1,
		nextEntryID: 1,
	}
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0, len(m.tasks))
	for id := int64(1); id < m.nextTaskID; id++ {
		if task, exists := m.tasks[id]; exists {
			tasks = append(tasks, *task)
		}
	}
	return tasks, nil
}

func (m *mockAPI) CreateTask(ctx context.Context, name string) (*domain.Task, error) {
	now := time.Now()
	task := &domain.Task{
		ID:        m.nextTaskID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.tasks[task.ID] = task
	m.nextTaskID++
	return task, nil
}

func (m *mockAPI) GetTask(ctx context.Context, taskID int64) (*domain.Task, error) {
	task, exists := m.tasks[taskID]
	if !exists {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", taskID))
	}
	return task, nil
}

func (m *mockAPI) CompleteTask(ctx context.Context, taskID int64, completedOn time.Time) error {
	task, exists := m.tasks[taskID]
	if !exists {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", taskID))
	}
	task.CompletedOn = &completedOn
	return nil
}

func (m *mockAPI) DeleteTask(ctx context.Context, taskID int64) error {
	if _, exists := m.tasks[taskID]; !exists {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", taskID))
	}
	delete(m.tasks, taskID)
	return nil
}

func (m *mockAPI) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	m.lastFilter = filter
	entries := make([]domain.TimeEntry, 0, len(m.entries))
	for id := int64(1); id < m.nextEntryID; id++ {
		if entry, exists := m.entries[id]; exists {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (m *mockAPI) ListTaskEntries(ctx context.Context, taskID int64, filter domain.EntryFilter) ([]domain.TimeEntry, error) {
	m.lastFilter = filter
	all, _ := m.ListEntries(ctx, filter)
	var entries []domain.TimeEntry
	for _, entry := range all {
		if entry.TaskID == taskID {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (m *mockAPI) GetEntry(ctx context.Context, entryID int64) (*domain.TimeEntry, error) {
	entry, exists := m.entries[entryID]
	if !exists {
		return nil, errors.NewNotFoundError("time entry", fmt.Sprintf("%d", entryID))
	}
	return entry, nil
}

func (m *mockAPI) CreateEntry(ctx context.Context, taskID int64, startTime time.Time, endTime *time.Time) (*domain.TimeEntry, error) {
	end := time.Now()
	if endTime != nil {
		end = *endTime
	}
	entry := &domain.TimeEntry{
		ID:        m.nextEntryID,
		TaskID:    taskID,
		StartTime: startTime,
		EndTime:   end,
		Duration:  end.Unix() - startTime.Unix(),
	}
	m.entries[entry.ID] = entry
	m.nextEntryID++
	return entry, nil
}

func (m *mockAPI) UpdateEntry(ctx context.Context, entryID, taskID int64, startTime, endTime time.Time) error {
	entry, exists := m.entries[entryID]
	if !exists {
		return errors.NewNotFoundError("time entry", fmt.Sprintf("%d", entryID))
	}
	entry.TaskID = taskID
	entry.StartTime = startTime
	entry.EndTime = endTime
	entry.Duration = endTime.Unix() - startTime.Unix()
	return nil
}

func (m *mockAPI) DeleteEntry(ctx context.Context, entryID int64) error {
	if _, exists := m.entries[entryID]; !exists {
		return errors.NewNotFoundError("time entry", fmt.Sprintf("%d", entryID))
	}
	delete(m.entries, entryID)
	return nil
}
