package cli

import (
	"context"
	"fmt"

	"github.com/codeforgood-org/todo/internal/output"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(app *App) *ClearCommand {
	return &ClearCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the clear command. Clearing an already-empty list succeeds.
func (c *ClearCommand) Execute(ctx context.Context, args []string) error {
	taskAPI, err := c.app.API()
	if err != nil {
		return c.errorHandler.Handle("clear tasks", err)
	}

	count, err := taskAPI.ClearTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("clear tasks", err)
	}

	palette := c.app.Palette()
	if count == 0 {
		fmt.Fprintf(c.app.out, "%s\n", palette.Warning("No tasks to clear."))
		return nil
	}
	output.FormatCleared(c.app.out, palette, count)
	return nil
}
