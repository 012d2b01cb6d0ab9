package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"slimtimer/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    app,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "st",
		Short: "A command-line client for the SlimTimer time-tracking service",
		Long: `SlimTimer client (st) talks to the SlimTimer web service to manage
tasks and time entries.

EXAMPLES:
  st login                                   # Verify credentials, print a reusable token
  st tasks                                   # List your tasks
  st add "Write report"                      # Create a task
  st show 42                                 # Show a task and its entries
  st done 42                                 # Mark a task completed
  st rm 42                                   # Delete a task
  st entries                                 # List all time entries
  st entries 42 --start 2026-08-01T00:00:00Z # Entries for task 42 since August
  st log 42 2026-08-25T09:00:00Z             # Log time from 9:00 until now
  st unlog 7                                 # Delete entry 7

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  ST_BASE_URL        Service base URL (default: http://slimtimer.com)
  ST_API_KEY         API key issued by the service (required)
  ST_EMAIL           Login email
  ST_PASSWORD        Login password (prompted when unset)
  ST_USER_ID         Saved user id for token reuse (with ST_ACCESS_TOKEN)
  ST_ACCESS_TOKEN    Saved access token for token reuse
  ST_HTTP_TIMEOUT    HTTP timeout (default: 30s)
  ST_DEBUG           Dump raw responses when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("base-url", "", "Service base URL (overrides ST_BASE_URL)")
	flags.String("api-key", "", "API key (overrides ST_API_KEY)")
	flags.String("email", "", "Login email (overrides ST_EMAIL)")
	flags.Duration("http-timeout", 0, "HTTP timeout (overrides ST_HTTP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides ST_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials and print a reusable session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewLoginCommand(r.app).Execute(ctx, args)
		},
	}

	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "List your tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTasksCommand(r.app).Execute(ctx, args)
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Create a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [task id]",
		Short: "Show a task and its time entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewShowCommand(r.app).Execute(ctx, args)
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done [task id]",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDoneCommand(r.app).Execute(ctx, args)
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [task id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewRemoveCommand(r.app).Execute(ctx, args)
		},
	}

	entriesCmd := &cobra.Command{
		Use:   "entries [task id]",
		Short: "List time entries, optionally for a single task",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			rangeStart, _ := cmd.Flags().GetString("start")
			rangeEnd, _ := cmd.Flags().GetString("end")
			return NewEntriesCommand(r.app).Execute(ctx, args, rangeStart, rangeEnd)
		},
	}
	entriesCmd.Flags().String("start", "", "Only entries starting at or after this RFC3339 time")
	entriesCmd.Flags().String("end", "", "Only entries starting at or before this RFC3339 time")

	logCmd := &cobra.Command{
		Use:   "log [task id] [start] [end]",
		Short: "Record a time entry (end defaults to now)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewLogCommand(r.app).Execute(ctx, args)
		},
	}

	unlogCmd := &cobra.Command{
		Use:   "unlog [entry id]",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewUnlogCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		loginCmd,
		tasksCmd,
		addCmd,
		showCmd,
		doneCmd,
		rmCmd,
		entriesCmd,
		logCmd,
		unlogCmd,
	)
}

// commandContext creates the per-command context. Login may need extra
// time for the interactive password prompt, so the budget is generous.
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout := r.config.GetHTTPTimeout() * 2
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if baseURL, _ := flags.GetString("base-url"); baseURL != "" {
		r.config.Service.BaseURL = baseURL
	}
	if apiKey, _ := flags.GetString("api-key"); apiKey != "" {
		r.config.Service.APIKey = apiKey
	}
	if email, _ := flags.GetString("email"); email != "" {
		r.config.Service.Email = email
	}
	if httpTimeout, _ := flags.GetDuration("http-timeout"); httpTimeout > 0 {
		r.config.HTTP.Timeout = httpTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
