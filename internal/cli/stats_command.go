package cli

import (
	"context"
	"fmt"

	"github.com/codeforgood-org/todo/internal/domain"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stats command, printing task counts per priority level.
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	taskAPI, err := c.app.API()
	if err != nil {
		return c.errorHandler.Handle("show stats", err)
	}

	counts, err := taskAPI.CountByPriority(ctx)
	if err != nil {
		return c.errorHandler.Handle("show stats", err)
	}

	palette := c.app.Palette()
	total := 0
	for _, count := range counts {
		total += count
	}

	fmt.Fprintf(c.app.out, "%s\n", palette.Heading("Task Statistics:"))
	groups := append([]domain.Priority{}, domain.Priorities...)
	groups = append(groups, domain.PriorityNone)
	for _, priority := range groups {
		label := string(priority)
		if priority == domain.PriorityNone {
			label = "none"
		}
		fmt.Fprintf(c.app.out, "  %s %d\n", palette.PriorityStyle(priority, label+":"), counts[priority])
	}
	fmt.Fprintf(c.app.out, "  %s %d\n", palette.Number("total:"), total)
	return nil
}
