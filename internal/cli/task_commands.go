package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"slimtimer/internal/domain"
)

// TasksCommand lists the user's tasks
type TasksCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTasksCommand creates a new tasks command handler
func NewTasksCommand(app *App) *TasksCommand {
	return &TasksCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute lists all tasks
func (c *TasksCommand) Execute(ctx context.Context, args []string) error {
	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("connect", err)
	}

	tasks, err := api.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.app.out, "No tasks found")
		return nil
	}

	fmt.Fprintf(c.app.out, "%-8s %-40s %8s %s\n", "ID", "NAME", "HOURS", "STATUS")
	for _, task := range tasks {
		fmt.Fprintf(c.app.out, "%-8d %-40s %8.2f %s\n", task.ID, task.Name, task.Hours, taskStatus(task))
	}
	return nil
}

// AddCommand creates a new task
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute creates a task with the given name
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("connect", err)
	}

	task, err := api.CreateTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	fmt.Fprintf(c.app.out, "Created task %d: %s\n", task.ID, task.Name)
	return nil
}

// ShowCommand displays a single task and its time entries
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute shows the task with the given id and its recorded entries
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	taskID, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}

	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("connect", err)
	}

	task, err := api.GetTask(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}

	fmt.Fprintf(c.app.out, "Task %d: %s (%.2f hours, %s)\n", task.ID, task.Name, task.Hours, taskStatus(*task))

	entries, err := api.ListTaskEntries(ctx, taskID, domain.EntryFilter{})
	if err != nil {
		return c.errorHandler.Handle("list task entries", err)
	}
	for _, entry := range entries {
		printEntry(c.app, entry)
	}
	return nil
}

// DoneCommand marks a task as completed
type DoneCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute marks the task with the given id as completed now
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	taskID, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("connect", err)
	}

	if err := api.CompleteTask(ctx, taskID, time.Now()); err != nil {
		return c.errorHandler.Handle("complete task", err)
	}

	fmt.Fprintf(c.app.out, "Completed task %d\n", taskID)
	return nil
}

// RemoveCommand deletes a task
type RemoveCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute deletes the task with the given id
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	taskID, err := parseID(args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	api, err := c.app.connect(ctx, c.app)
	if err != nil {
		return c.errorHandler.Handle("connect", err)
	}

	if err := api.DeleteTask(ctx, taskID); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Fprintf(c.app.out, "Deleted task %d\n", taskID)
	return nil
}

// parseID parses a positional resource id argument
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: expected a positive integer", raw)
	}
	return id, nil
}

func taskStatus(task domain.Task) string {
	if task.IsComplete() {
		return "completed " + task.CompletedOn.Format("2006-01-02")
	}
	return "open"
}
