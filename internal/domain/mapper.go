package domain

import (
	"slimtimer/internal/wire"
)

// TaskMapper handles conversion from decoded wire mappings to Task values.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// FromWire converts a decoded wire mapping to a Task.
func (m *TaskMapper) FromWire(wm wire.Mapping) (Task, error) {
	id, err := wm.Int("id")
	if err != nil {
		return Task{}, err
	}
	name, err := wm.String("name")
	if err != nil {
		return Task{}, err
	}
	createdAt, err := wm.Time("created_at")
	if err != nil {
		return Task{}, err
	}
	updatedAt, err := wm.Time("updated_at")
	if err != nil {
		return Task{}, err
	}
	hours, err := wm.Float("hours")
	if err != nil {
		return Task{}, err
	}
	completedOn, err := wm.OptionalTime("completed_on")
	if err != nil {
		return Task{}, err
	}

	return Task{
		ID:          id,
		Name:        name,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Hours:       hours,
		CompletedOn: completedOn,
	}, nil
}

// FromWireSlice converts a sequence of wire mappings to Tasks.
func (m *TaskMapper) FromWireSlice(wms []wire.Mapping) ([]Task, error) {
	tasks := make([]Task, len(wms))
	for i, wm := range wms {
		task, err := m.FromWire(wm)
		if err != nil {
			return nil, err
		}
		tasks[i] = task
	}
	return tasks, nil
}

// TimeEntryMapper handles conversion from decoded wire mappings to TimeEntry values.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// normalize flattens the two response shapes the service produces into one.
// When the entry embeds a nested task mapping, task.id and task.name are
// lifted into task_id and task_name; otherwise task_id must already be
// present in the flat mapping.
func (m *TimeEntryMapper) normalize(wm wire.Mapping) (wire.Mapping, error) {
	nested, err := wm.Nested("task")
	if err != nil {
		return nil, err
	}
	if nested == nil {
		return wm, nil
	}

	flat := make(wire.Mapping, len(wm)+1)
	for key, value := range wm {
		flat[key] = value
	}
	delete(flat, "task")

	taskID, err := nested.Int("id")
	if err != nil {
		return nil, err
	}
	flat["task_id"] = taskID

	if nested.Has("name") {
		taskName, err := nested.String("name")
		if err != nil {
			return nil, err
		}
		flat["task_name"] = taskName
	}
	return flat, nil
}

// FromWire converts a decoded wire mapping to a TimeEntry, renaming
// duration_in_seconds to Duration.
func (m *TimeEntryMapper) FromWire(wm wire.Mapping) (TimeEntry, error) {
	flat, err := m.normalize(wm)
	if err != nil {
		return TimeEntry{}, err
	}

	id, err := flat.Int("id")
	if err != nil {
		return TimeEntry{}, err
	}
	taskID, err := flat.Int("task_id")
	if err != nil {
		return TimeEntry{}, err
	}
	taskName, err := flat.OptionalString("task_name")
	if err != nil {
		return TimeEntry{}, err
	}
	startTime, err := flat.Time("start_time")
	if err != nil {
		return TimeEntry{}, err
	}
	endTime, err := flat.Time("end_time")
	if err != nil {
		return TimeEntry{}, err
	}
	createdAt, err := flat.Time("created_at")
	if err != nil {
		return TimeEntry{}, err
	}
	updatedAt, err := flat.Time("updated_at")
	if err != nil {
		return TimeEntry{}, err
	}
	duration, err := flat.Int("duration_in_seconds")
	if err != nil {
		return TimeEntry{}, err
	}
	comments, err := flat.OptionalString("comments")
	if err != nil {
		return TimeEntry{}, err
	}
	inProgress, err := flat.Bool("in_progress")
	if err != nil {
		return TimeEntry{}, err
	}

	return TimeEntry{
		ID:         id,
		TaskID:     taskID,
		TaskName:   taskName,
		StartTime:  startTime,
		EndTime:    endTime,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		Duration:   duration,
		Comments:   comments,
		InProgress: inProgress,
	}, nil
}

// FromWireSlice converts a sequence of wire mappings to TimeEntries.
func (m *TimeEntryMapper) FromWireSlice(wms []wire.Mapping) ([]TimeEntry, error) {
	entries := make([]TimeEntry, len(wms))
	for i, wm := range wms {
		entry, err := m.FromWire(wm)
		if err != nil {
			return nil, err
		}
		entries[i] = entry
	}
	return entries, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task      *TaskMapper
	TimeEntry *TimeEntryMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:      NewTaskMapper(),
		TimeEntry: NewTimeEntryMapper(),
	}
}
