package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A command-line todo list manager",
		Long: `todo is a lightweight command-line tool for managing daily tasks.
Tasks are persisted to a local JSON file.

EXAMPLES:
  todo add "Buy groceries"                 # Add a new task
  todo add --priority high "Fix the bug"   # Add a high priority task
  todo list                                # List all tasks
  todo list --by-priority                  # List tasks grouped by priority
  todo remove 1                            # Remove the first task
  todo remove --id 3                       # Remove the task with ID 3
  todo clear                               # Remove all tasks
  todo stats                               # Show task counts by priority
  todo config                              # Show configuration
  todo config use_colors false             # Change a setting

CONFIGURATION:
  Settings live in ~/.todo/config.toml and can be changed with the config
  command. Keys: tasks_file, use_colors, show_task_ids, date_format.

  Environment overrides:
    TODO_TASKS_FILE                        Tasks file path
    TODO_CONFIG                            Config file path
    TODO_USE_COLORS                        Enable colored output
    TODO_SHOW_TASK_IDS                     Show task IDs in listings
    TODO_DATE_FORMAT                       Date display format (Go layout)
    TODO_DEBUG                             Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.applyFlagOverrides()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare "todo" shows help and succeeds.
			return cmd.Help()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command with the given context and arguments
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.String("tasks-file", "", "Tasks file path (overrides TODO_TASKS_FILE)")
	flags.Bool("no-color", false, "Disable colored output")
}

// applyFlagOverrides copies global flag values into the configuration
// before any command opens the task store
func (r *RootCommand) applyFlagOverrides() error {
	flags := r.cmd.PersistentFlags()

	if flags.Changed("tasks-file") {
		path, err := flags.GetString("tasks-file")
		if err != nil {
			return err
		}
		r.app.config.Storage.TasksFile = path
	}
	if flags.Changed("no-color") {
		noColor, err := flags.GetBool("no-color")
		if err != nil {
			return err
		}
		if noColor {
			r.app.config.Display.UseColors = false
		}
	}

	return r.app.config.Validate()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addHandler := NewAddCommand(r.app)
	addCmd := &cobra.Command{
		Use:   "add [task description]",
		Short: "Add a new task",
		Long:  "Add a new task to the list. All arguments are joined into one description.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return addHandler.Execute(cmd.Context(), args)
		},
	}
	addCmd.Flags().StringVarP(&addHandler.Priority, "priority", "p", "", "Priority level: high, medium, or low")
	r.cmd.AddCommand(addCmd)

	listHandler := NewListCommand(r.app)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List all tasks in the order they were added.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listHandler.Execute(cmd.Context(), args)
		},
	}
	listCmd.Flags().BoolVar(&listHandler.ByPriority, "by-priority", false, "Group tasks by priority level")
	r.cmd.AddCommand(listCmd)

	removeHandler := NewRemoveCommand(r.app)
	removeCmd := &cobra.Command{
		Use:   "remove <number>",
		Short: "Remove a task by number",
		Long:  "Remove a task by its list number as shown by list, or by its ID with --id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeHandler.Execute(cmd.Context(), args)
		},
	}
	removeCmd.Flags().BoolVar(&removeHandler.ByID, "id", false, "Interpret the argument as a task ID")
	r.cmd.AddCommand(removeCmd)

	clearHandler := NewClearCommand(r.app)
	r.cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove all tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearHandler.Execute(cmd.Context(), args)
		},
	})

	statsHandler := NewStatsCommand(r.app)
	r.cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show task counts by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return statsHandler.Execute(cmd.Context(), args)
		},
	})

	configHandler := NewConfigCommand(r.app)
	r.cmd.AddCommand(&cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set configuration",
		Long:  "With no arguments, show all settings. With a key, show that setting. With a key and value, update the setting and save it.",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return configHandler.Execute(cmd.Context(), args)
		},
	})
}
