package jsonfile

import (
	"time"
)

// Task is the on-disk task record. Field names match the original file
// format, so existing task files keep working.
type Task struct {
	ID          int64      `json:"id"`
	Description string     `json:"task"`
	Priority    string     `json:"priority,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}
