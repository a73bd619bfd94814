package domain

import (
	"fmt"
	"strings"
	"time"
)

// Priority represents an optional task priority level.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
	PriorityNone   Priority = ""
)

// Priorities lists the assignable priority levels in display order.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ParsePriority parses a priority string. The empty string is valid and
// means no priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityLow:
		return PriorityLow, nil
	case PriorityNone:
		return PriorityNone, nil
	}
	return PriorityNone, fmt.Errorf("invalid priority %q: use high, medium, or low", s)
}

// IsValid checks if the priority is one of the known levels or unset.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow, PriorityNone:
		return true
	}
	return false
}

// Label returns a display label for the priority.
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "HIGH PRIORITY"
	case PriorityMedium:
		return "MEDIUM PRIORITY"
	case PriorityLow:
		return "LOW PRIORITY"
	default:
		return "NO PRIORITY"
	}
}

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          int64
	Description string
	Priority    Priority
	CreatedAt   *time.Time
}

// NewTask creates a new Task with the given description.
func NewTask(description string) Task {
	return Task{
		Description: description,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return strings.TrimSpace(t.Description) != "" && t.Priority.IsValid()
}

// String returns the task description for display purposes.
func (t Task) String() string {
	return t.Description
}
