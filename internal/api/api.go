package api

import (
	"context"
	"fmt"
	"time"

	"github.com/codeforgood-org/todo/internal/config"
	"github.com/codeforgood-org/todo/internal/domain"
	"github.com/codeforgood-org/todo/internal/errors"
	"github.com/codeforgood-org/todo/internal/repository/jsonfile"
	"github.com/codeforgood-org/todo/internal/validation"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// API defines the interface for all task operations.
type API interface {
	AddTask(ctx context.Context, description string, priority domain.Priority) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	RemoveTaskAt(ctx context.Context, position int) (*domain.Task, error)
	RemoveTaskByID(ctx context.Context, id int64) (*domain.Task, error)
	ClearTasks(ctx context.Context) (int, error)
	CountByPriority(ctx context.Context) (map[domain.Priority]int, error)
}

type apiImpl struct {
	repo          jsonfile.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// New creates a new API instance.
func New(repo jsonfile.Repository) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// NewWithConfig creates a new API instance with configured validation limits.
func NewWithConfig(repo jsonfile.Repository, cfg *config.Config) API {
	return &apiImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// AddTask validates the description and priority, assigns the next unused
// ID, stamps the creation time, and persists the new task.
func (a *apiImpl) AddTask(ctx context.Context, description string, priority domain.Priority) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := a.taskValidator.ValidateTaskForCreation(description, priority); err != nil {
		return nil, err
	}

	cleaned, err := a.taskValidator.GetValidDescription(description)
	if err != nil {
		return nil, err
	}

	now := timeNow().UTC().Truncate(time.Second)
	storedTask := jsonfile.Task{
		Description: cleaned,
		Priority:    string(priority),
		CreatedAt:   &now,
	}
	if err := a.repo.CreateTask(&storedTask); err != nil {
		return nil, err
	}

	domainTask := a.mapper.Task.FromStorage(storedTask)
	return &domainTask, nil
}

// ListTasks returns all tasks in insertion order.
func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	storedTasks, err := a.repo.ListTasks()
	if err != nil {
		return nil, err
	}
	domainTasks := make([]*domain.Task, len(storedTasks))
	for i, storedTask := range storedTasks {
		domainTask := a.mapper.Task.FromStorage(*storedTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks, nil
}

// RemoveTaskAt removes the task at the given 1-based list position and
// returns it. Out-of-range positions leave the file unchanged.
func (a *apiImpl) RemoveTaskAt(ctx context.Context, position int) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := a.taskValidator.ValidatePosition(position); err != nil {
		return nil, err
	}

	storedTasks, err := a.repo.ListTasks()
	if err != nil {
		return nil, err
	}
	if len(storedTasks) == 0 {
		return nil, errors.NewInvalidInputError("task number", position, "no tasks to remove")
	}
	if position > len(storedTasks) {
		return nil, a.taskValidator.PositionRangeError(position, len(storedTasks))
	}

	removed, err := a.repo.DeleteTaskAt(position)
	if err != nil {
		return nil, err
	}
	domainTask := a.mapper.Task.FromStorage(*removed)
	return &domainTask, nil
}

// RemoveTaskByID removes the task with the given ID and returns it.
func (a *apiImpl) RemoveTaskByID(ctx context.Context, id int64) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	removed, err := a.repo.DeleteTask(id)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return nil, errors.NewNotFoundError("task", fmt.Sprintf("id %d", id))
		}
		return nil, err
	}
	domainTask := a.mapper.Task.FromStorage(*removed)
	return &domainTask, nil
}

// ClearTasks removes every task and returns how many were removed.
func (a *apiImpl) ClearTasks(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return a.repo.DeleteAllTasks()
}

// CountByPriority returns task counts keyed by priority level, including
// domain.PriorityNone for unprioritized tasks.
func (a *apiImpl) CountByPriority(ctx context.Context) (map[domain.Priority]int, error) {
	tasks, err := a.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Priority]int)
	for _, task := range tasks {
		priority := task.Priority
		if !priority.IsValid() {
			priority = domain.PriorityNone
		}
		counts[priority]++
	}
	return counts, nil
}
