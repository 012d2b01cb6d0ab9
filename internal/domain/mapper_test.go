package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slimtimer/internal/errors"
	"slimtimer/internal/wire"
)

func taskMapping() wire.Mapping {
	return wire.Mapping{
		"id":         7,
		"name":       "X",
		"created_at": "2026-08-01T08:00:00Z",
		"updated_at": "2026-08-02T08:00:00Z",
		"hours":      3.5,
	}
}

func entryMapping() wire.Mapping {
	return wire.Mapping{
		"id":                  3,
		"task_id":             7,
		"start_time":          "2026-08-25T09:00:00Z",
		"end_time":            "2026-08-25T10:00:00Z",
		"created_at":          "2026-08-25T10:00:01Z",
		"updated_at":          "2026-08-25T10:00:01Z",
		"duration_in_seconds": 3600,
		"in_progress":         false,
	}
}

func TestTaskMapper_FromWire(t *testing.T) {
	mapper := NewTaskMapper()

	t.Run("should build a task from a decoded response", func(t *testing.T) {
		task, err := mapper.FromWire(taskMapping())

		require.NoError(t, err)
		assert.Equal(t, int64(7), task.ID)
		assert.Equal(t, "X", task.Name)
		assert.Equal(t, 3.5, task.Hours)
		assert.Nil(t, task.CompletedOn)
		assert.False(t, task.IsComplete())
	})

	t.Run("should read an optional completion time", func(t *testing.T) {
		wm := taskMapping()
		wm["completed_on"] = "2026-08-20T17:00:00Z"

		task, err := mapper.FromWire(wm)

		require.NoError(t, err)
		require.NotNil(t, task.CompletedOn)
		assert.True(t, task.IsComplete())
		assert.Equal(t, time.Date(2026, 8, 20, 17, 0, 0, 0, time.UTC), task.CompletedOn.UTC())
	})

	t.Run("should fail naming a missing field", func(t *testing.T) {
		wm := taskMapping()
		delete(wm, "name")

		_, err := mapper.FromWire(wm)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDecode))
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should convert a sequence of mappings", func(t *testing.T) {
		tasks, err := mapper.FromWireSlice([]wire.Mapping{taskMapping(), taskMapping()})

		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})
}

func TestTimeEntryMapper_FromWire(t *testing.T) {
	mapper := NewTimeEntryMapper()

	t.Run("should rename duration_in_seconds to Duration", func(t *testing.T) {
		wm := entryMapping()
		wm["duration_in_seconds"] = 120

		entry, err := mapper.FromWire(wm)

		require.NoError(t, err)
		assert.Equal(t, int64(120), entry.Duration)
		assert.Equal(t, 2*time.Minute, entry.Elapsed())
	})

	t.Run("should extract the task id and name from a nested task", func(t *testing.T) {
		wm := entryMapping()
		delete(wm, "task_id")
		wm["task"] = map[string]interface{}{
			"id":   9,
			"name": "Proj",
		}

		entry, err := mapper.FromWire(wm)

		require.NoError(t, err)
		assert.Equal(t, int64(9), entry.TaskID)
		assert.Equal(t, "Proj", entry.TaskName)
	})

	t.Run("should use the flat task id when no task is embedded", func(t *testing.T) {
		entry, err := mapper.FromWire(entryMapping())

		require.NoError(t, err)
		assert.Equal(t, int64(7), entry.TaskID)
		assert.Equal(t, "", entry.TaskName)
	})

	t.Run("should fail when neither flat nor nested task id is present", func(t *testing.T) {
		wm := entryMapping()
		delete(wm, "task_id")

		_, err := mapper.FromWire(wm)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "task_id")
	})

	t.Run("should read optional comments and the running flag", func(t *testing.T) {
		wm := entryMapping()
		wm["comments"] = "standup"
		wm["in_progress"] = true

		entry, err := mapper.FromWire(wm)

		require.NoError(t, err)
		assert.Equal(t, "standup", entry.Comments)
		assert.True(t, entry.IsRunning())
	})

	t.Run("should accept timestamps already decoded as time values", func(t *testing.T) {
		wm := entryMapping()
		wm["start_time"] = time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

		entry, err := mapper.FromWire(wm)

		require.NoError(t, err)
		assert.Equal(t, 9, entry.StartTime.Hour())
	})
}
