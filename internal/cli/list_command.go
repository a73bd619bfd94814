package cli

import (
	"context"
	"fmt"

	"github.com/codeforgood-org/todo/internal/domain"
	"github.com/codeforgood-org/todo/internal/output"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// ByPriority groups the listing by priority level.
	ByPriority bool
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	taskAPI, err := c.app.API()
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	tasks, err := taskAPI.ListTasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	palette := c.app.Palette()
	if len(tasks) == 0 {
		output.FormatNoTasks(c.app.out, palette)
		return nil
	}

	if c.ByPriority {
		return c.printByPriority(tasks, palette)
	}
	return c.printInOrder(tasks, palette)
}

// printInOrder prints tasks one per line in insertion order, numbered by
// their 1-based position (the number accepted by remove).
func (c *ListCommand) printInOrder(tasks []*domain.Task, palette *output.Palette) error {
	output.FormatListHeader(c.app.out, palette, len(tasks))
	showIDs := c.app.Config().Display.ShowTaskIDs
	for i, task := range tasks {
		output.FormatTaskLine(c.app.out, palette, i+1, task, showIDs)
	}
	fmt.Fprintln(c.app.out)
	return nil
}

// printByPriority prints tasks grouped high to low, keeping each task's
// overall position number so remove still works on what is shown.
func (c *ListCommand) printByPriority(tasks []*domain.Task, palette *output.Palette) error {
	output.FormatListHeader(c.app.out, palette, len(tasks))
	showIDs := c.app.Config().Display.ShowTaskIDs
	dateFormat := c.app.Config().Display.DateFormat

	groups := append([]domain.Priority{}, domain.Priorities...)
	groups = append(groups, domain.PriorityNone)

	for _, priority := range groups {
		var printedHeader bool
		for i, task := range tasks {
			if task.Priority != priority {
				continue
			}
			if !printedHeader {
				output.FormatPriorityHeader(c.app.out, palette, priority)
				printedHeader = true
			}
			output.FormatTaskLineWithDate(c.app.out, palette, i+1, task, showIDs, dateFormat)
		}
		if printedHeader {
			fmt.Fprintln(c.app.out)
		}
	}
	return nil
}
