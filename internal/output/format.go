// Package output provides formatters and color styling for CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/codeforgood-org/todo/internal/config"
	"github.com/codeforgood-org/todo/internal/domain"
)

// Palette holds the styles used for CLI output. With colors disabled every
// style renders text unchanged.
type Palette struct {
	enabled bool

	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	heading lipgloss.Style
	number  lipgloss.Style
	dim     lipgloss.Style
}

// NewPalette creates a palette. Pass enabled=false for plain output.
func NewPalette(enabled bool) *Palette {
	p := &Palette{enabled: enabled}
	if enabled {
		p.success = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
		p.warning = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		p.failure = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
		p.heading = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
		p.number = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
		p.dim = lipgloss.NewStyle().Faint(true)
	}
	return p
}

// ColorsEnabled reports whether colored output should be used: the config
// must allow it and stdout must be a terminal.
func ColorsEnabled(cfg *config.Config) bool {
	if cfg != nil && !cfg.Display.UseColors {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func (p *Palette) render(style lipgloss.Style, s string) string {
	if !p.enabled {
		return s
	}
	return style.Render(s)
}

// Success renders s in the success style.
func (p *Palette) Success(s string) string { return p.render(p.success, s) }

// Warning renders s in the warning style.
func (p *Palette) Warning(s string) string { return p.render(p.warning, s) }

// Failure renders s in the failure style.
func (p *Palette) Failure(s string) string { return p.render(p.failure, s) }

// Heading renders s in the heading style.
func (p *Palette) Heading(s string) string { return p.render(p.heading, s) }

// Number renders s in the number style.
func (p *Palette) Number(s string) string { return p.render(p.number, s) }

// Dim renders s in the dim style.
func (p *Palette) Dim(s string) string { return p.render(p.dim, s) }

// PriorityStyle renders a priority label in its level color.
func (p *Palette) PriorityStyle(priority domain.Priority, s string) string {
	switch priority {
	case domain.PriorityHigh:
		return p.render(p.failure, s)
	case domain.PriorityMedium:
		return p.render(p.warning, s)
	case domain.PriorityLow:
		return p.render(p.success, s)
	default:
		return p.render(p.dim, s)
	}
}

// FormatTaskLine writes one numbered task line.
// Format: "  {N:>3}. {DESCRIPTION}" plus "(#ID)" when showIDs is set.
func FormatTaskLine(w io.Writer, p *Palette, num int, task *domain.Task, showIDs bool) {
	line := fmt.Sprintf("  %s %s", p.Number(fmt.Sprintf("%3d.", num)), task.Description)
	if showIDs {
		line += " " + p.Dim(fmt.Sprintf("(#%d)", task.ID))
	}
	fmt.Fprintln(w, line)
}

// FormatTaskLineWithDate writes a numbered task line with its creation date.
func FormatTaskLineWithDate(w io.Writer, p *Palette, num int, task *domain.Task, showIDs bool, dateFormat string) {
	line := fmt.Sprintf("  %s %s", p.Number(fmt.Sprintf("%3d.", num)), task.Description)
	if showIDs {
		line += " " + p.Dim(fmt.Sprintf("(#%d)", task.ID))
	}
	if task.CreatedAt != nil {
		line += " " + p.Dim(fmt.Sprintf("(created: %s)", task.CreatedAt.Format(dateFormat)))
	}
	fmt.Fprintln(w, line)
}

// FormatListHeader writes the task count heading.
func FormatListHeader(w io.Writer, p *Palette, count int) {
	fmt.Fprintf(w, "\n%s\n\n", p.Heading(fmt.Sprintf("You have %d task(s):", count)))
}

// FormatPriorityHeader writes a priority group heading.
func FormatPriorityHeader(w io.Writer, p *Palette, priority domain.Priority) {
	fmt.Fprintf(w, "%s\n", p.PriorityStyle(priority, priority.Label()+":"))
}

// FormatNoTasks writes the empty-list message with a usage hint.
func FormatNoTasks(w io.Writer, p *Palette) {
	fmt.Fprintf(w, "%s Add one with: %s\n", p.Warning("No tasks found."), p.Number(`todo add "task description"`))
}

// FormatAdded writes the add confirmation.
func FormatAdded(w io.Writer, p *Palette, task *domain.Task) {
	if task.Priority != domain.PriorityNone {
		fmt.Fprintf(w, "%s %s\n", p.Success(fmt.Sprintf("✓ Added %s priority task:", task.Priority)), task.Description)
		return
	}
	fmt.Fprintf(w, "%s %s\n", p.Success("✓ Added task:"), task.Description)
}

// FormatRemoved writes the remove confirmation.
func FormatRemoved(w io.Writer, p *Palette, task *domain.Task) {
	fmt.Fprintf(w, "%s %s\n", p.Success("✓ Removed task:"), task.Description)
}

// FormatCleared writes the clear confirmation.
func FormatCleared(w io.Writer, p *Palette, count int) {
	fmt.Fprintf(w, "%s\n", p.Success(fmt.Sprintf("✓ Cleared %d task(s).", count)))
}

// FormatConfigEntry writes one "key: value" configuration line.
func FormatConfigEntry(w io.Writer, p *Palette, key, value string) {
	fmt.Fprintf(w, "  %s %s\n", p.Number(key+":"), value)
}

// FormatConfigUpdated writes the config set confirmation.
func FormatConfigUpdated(w io.Writer, p *Palette, key, value string) {
	fmt.Fprintf(w, "%s %s = %s\n", p.Success("✓ Configuration updated:"), key, value)
}
