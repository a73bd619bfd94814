package domain

import (
	"github.com/codeforgood-org/todo/internal/repository/jsonfile"
)

// TaskMapper handles conversion between domain and storage Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToStorage converts a domain Task to a storage Task.
func (m *TaskMapper) ToStorage(domainTask Task) jsonfile.Task {
	return jsonfile.Task{
		ID:          domainTask.ID,
		Description: domainTask.Description,
		Priority:    string(domainTask.Priority),
		CreatedAt:   domainTask.CreatedAt,
	}
}

// FromStorage converts a storage Task to a domain Task.
func (m *TaskMapper) FromStorage(storedTask jsonfile.Task) Task {
	return Task{
		ID:          storedTask.ID,
		Description: storedTask.Description,
		Priority:    Priority(storedTask.Priority),
		CreatedAt:   storedTask.CreatedAt,
	}
}

// ToStorageSlice converts a slice of domain Tasks to storage Tasks.
func (m *TaskMapper) ToStorageSlice(domainTasks []Task) []jsonfile.Task {
	storedTasks := make([]jsonfile.Task, len(domainTasks))
	for i, task := range domainTasks {
		storedTasks[i] = m.ToStorage(task)
	}
	return storedTasks
}

// FromStorageSlice converts a slice of storage Tasks to domain Tasks.
func (m *TaskMapper) FromStorageSlice(storedTasks []jsonfile.Task) []Task {
	domainTasks := make([]Task, len(storedTasks))
	for i, task := range storedTasks {
		domainTasks[i] = m.FromStorage(task)
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
