package cli

import (
	"context"
	"strings"

	"github.com/codeforgood-org/todo/internal/domain"
	"github.com/codeforgood-org/todo/internal/errors"
	"github.com/codeforgood-org/todo/internal/output"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// Priority is the optional priority level flag value.
	Priority string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. All arguments are joined into one
// description, so quoting is optional.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", `usage: todo add "task description"`)
	}

	priority, err := domain.ParsePriority(c.Priority)
	if err != nil {
		return errors.NewInvalidInputError("priority", c.Priority, err.Error())
	}

	taskAPI, err := c.app.API()
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	task, err := taskAPI.AddTask(ctx, strings.Join(args, " "), priority)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	output.FormatAdded(c.app.out, c.app.Palette(), task)
	return nil
}
