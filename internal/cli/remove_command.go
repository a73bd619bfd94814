package cli

import (
	"context"
	"strconv"

	"github.com/codeforgood-org/todo/internal/errors"
	"github.com/codeforgood-org/todo/internal/output"
)

// RemoveCommand handles the remove command
type RemoveCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// ByID interprets the argument as a task ID instead of a list position.
	ByID bool
}

// NewRemoveCommand creates a new remove command handler
func NewRemoveCommand(app *App) *RemoveCommand {
	return &RemoveCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the remove command
func (c *RemoveCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "remove", "usage: todo remove <number>")
	}

	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.NewInvalidInputError("task number", args[0], "must be a whole number")
	}

	taskAPI, err := c.app.API()
	if err != nil {
		return c.errorHandler.Handle("remove task", err)
	}

	if c.ByID {
		task, err := taskAPI.RemoveTaskByID(ctx, n)
		if err != nil {
			return c.errorHandler.Handle("remove task", err)
		}
		output.FormatRemoved(c.app.out, c.app.Palette(), task)
		return nil
	}

	task, err := taskAPI.RemoveTaskAt(ctx, int(n))
	if err != nil {
		return c.errorHandler.Handle("remove task", err)
	}
	output.FormatRemoved(c.app.out, c.app.Palette(), task)
	return nil
}
