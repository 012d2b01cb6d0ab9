package cli

import (
	"context"
	"fmt"
	"time"

	"slimtimer/internal/domain"
	"slimtimer/internal/wire"
)

// EntriesCommand lists time entries, globally or for one task
type EntriesCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEntriesCommand creates a new entries command handler
func NewEntriesCommand(app *App) *EntriesCommand {
	return &EntriesCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute lists time entries. With a task id argument only that task's
// entries are listed; rangeStart/rangeEnd bound the listing when non-empty.
func (c *EntriesCommand) Execute(ctx context.Context, args []string, rangeStart, rangeEnd string) error {
	filter, err := parseFilter(rangeStart, rangeEnd)
	if err != nil {
		return c.errorHandler.Handle("list entries", err)
	}

	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("connect", err)
	}

	var entries []domain.TimeEntry
	if len(args) > 0 {
		taskID, err := parseID(args[0])
		if err != nil {
			return c.errorHandler.Handle("list entries", err)
		}
		entries, err = api.ListTaskEntries(ctx, taskID, filter)
		if err != nil {
			return c.errorHandler.Handle("list entries", err)
		}
	} else {
		entries, err = api.ListEntries(ctx, filter)
		if err != nil {
			return c.errorHandler.Handle("list entries", err)
		}
	}

	if len(entries) == 0 {
		fmt.Fprintln(c.app.out, "No time entries found")
		return nil
	}
	for _, entry := range entries {
		printEntry(c.app, entry)
	}
	return nil
}

// LogCommand records a time entry against a task
type LogCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute records an entry for args: <task id> <start> [end], where the
// bounds are RFC3339 timestamps. The end defaults to now when omitted.
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	taskID, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("log time", err)
	}
	startTime, err := wire.ParseTimestamp(args[1])
	if err != nil {
		return c.errorHandler.Handle("log time", fmt.Errorf("invalid start time %q: %w", args[1], err))
	}

	var endTime *time.Time
	if len(args) > 2 {
		parsed, err := wire.ParseTimestamp(args[2])
		if err != nil {
			return c.errorHandler.Handle("log time", fmt.Errorf("invalid end time %q: %w", args[2], err))
		}
		endTime = &parsed
	}

	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("connect", err)
	}

	entry, err := api.CreateEntry(ctx, taskID, startTime, endTime)
	if err != nil {
		return c.errorHandler.Handle("log time", err)
	}

	fmt.Fprintf(c.app.out, "Logged entry %d (%s)\n", entry.ID, entry.Elapsed())
	return nil
}

// UnlogCommand deletes a time entry
type UnlogCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewUnlogCommand creates a new unlog command handler
func NewUnlogCommand(app *App) *UnlogCommand {
	return &UnlogCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute deletes the time entry with the given id
func (c *UnlogCommand) Execute(ctx context.Context, args []string) error {
	entryID, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("connect", err)
	}

	if err := api.DeleteEntry(ctx, entryID); err != nil {
		return c.errorHandler.Handle("delete entry", err)
	}

	fmt.Fprintf(c.app.out, "Deleted entry %d\n", entryID)
	return nil
}

// parseFilter builds an entry filter from optional RFC3339 bounds
func parseFilter(rangeStart, rangeEnd string) (domain.EntryFilter, error) {
	var filter domain.EntryFilter
	if rangeStart != "" {
		start, err := wire.ParseTimestamp(rangeStart)
		if err != nil {
			return domain.EntryFilter{}, fmt.Errorf("invalid range start %q: %w", rangeStart, err)
		}
		filter.RangeStart = &start
	}
	if rangeEnd != "" {
		end, err := wire.ParseTimestamp(rangeEnd)
		if err != nil {
			return domain.EntryFilter{}, fmt.Errorf("invalid range end %q: %w", rangeEnd, err)
		}
		filter.RangeEnd = &end
	}
	return filter, nil
}

// printEntry writes one time entry line
func printEntry(app *App, entry domain.TimeEntry) {
	name := entry.TaskName
	if name == "" {
		name = fmt.Sprintf("task %d", entry.TaskID)
	}
	status := ""
	if entry.IsRunning() {
		status = " (running)"
	}
	fmt.Fprintf(app.out, "%-8d %-30s %s -> %s %10s%s\n",
		entry.ID, name,
		entry.StartTime.Format("2006-01-02 15:04"),
		entry.EndTime.Format("2006-01-02 15:04"),
		entry.Elapsed(), status)
}
