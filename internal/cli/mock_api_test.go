package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/codeforgood-org/todo/internal/api"
	"github.com/codeforgood-org/todo/internal/domain"
	"github.com/codeforgood-org/todo/internal/errors"
	"github.com/codeforgood-org/todo/internal/validation"
)

// mockAPI is an in-memory api.API implementation for command tests.
type mockAPI struct {
	tasks  []*domain.Task
	nextID int64

	// failWith, when set, is returned by every operation.
	failWith error
}

var _ api.API = (*mockAPI)(nil)

func newMockAPI() *mockAPI {
	return &mockAPI{nextID: 1}
}

func (m *mockAPI) seed(description string, priority domain.Priority) *domain.Task {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	task := &domain.Task{
		ID:          m.nextID,
		Description: description,
		Priority:    priority,
		CreatedAt:   &createdAt,
	}
	m.nextID++
	m.tasks = append(m.tasks, task)
	return task
}

func (m *mockAPI) AddTask(ctx context.Context, description string, priority domain.Priority) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		validationErr := validation.NewValidationError()
		validationErr.AddRequiredError("description")
		return nil, validationErr
	}
	return m.seed(trimmed, priority), nil
}

func (m *mockAPI) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	return m.tasks, nil
}

func (m *mockAPI) RemoveTaskAt(ctx context.Context, position int) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if len(m.tasks) == 0 {
		return nil, errors.NewInvalidInputError("task number", position, "no tasks to remove")
	}
	if position < 1 || position > len(m.tasks) {
		validationErr := validation.NewValidationError()
		validationErr.AddInvalidRangeError("task number", position, fmt.Sprintf("choose a number between 1 and %d", len(m.tasks)))
		return nil, validationErr
	}
	task := m.tasks[position-1]
	m.tasks = append(m.tasks[:position-1], m.tasks[position:]...)
	return task, nil
}

func (m *mockAPI) RemoveTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	for i, task := range m.tasks {
		if task.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return task, nil
		}
	}
	return nil, errors.NewNotFoundError("task", "unknown id")
}

func (m *mockAPI) ClearTasks(ctx context.Context) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	count := len(m.tasks)
	m.tasks = nil
	return count, nil
}

func (m *mockAPI) CountByPriority(ctx context.Context) (map[domain.Priority]int, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	counts := make(map[domain.Priority]int)
	for _, task := range m.tasks {
		counts[task.Priority]++
	}
	return counts, nil
}
