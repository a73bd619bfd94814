package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codeforgood-org/todo/internal/repository/jsonfile"
)

func TestTaskMapperRoundTrip(t *testing.T) {
	mapper := NewTaskMapper()
	created := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)

	domainTask := Task{
		ID:          3,
		Description: "Review pull request",
		Priority:    PriorityHigh,
		CreatedAt:   &created,
	}

	stored := mapper.ToStorage(domainTask)
	assert.Equal(t, int64(3), stored.ID)
	assert.Equal(t, "Review pull request", stored.Description)
	assert.Equal(t, "high", stored.Priority)
	assert.Equal(t, &created, stored.CreatedAt)

	back := mapper.FromStorage(stored)
	assert.Equal(t, domainTask, back)
}

func TestTaskMapperOptionalFields(t *testing.T) {
	mapper := NewTaskMapper()

	stored := jsonfile.Task{ID: 1, Description: "Plain task"}
	domainTask := mapper.FromStorage(stored)

	assert.Equal(t, PriorityNone, domainTask.Priority)
	assert.Nil(t, domainTask.CreatedAt)
}

func TestTaskMapperSlices(t *testing.T) {
	mapper := NewTaskMapper()

	stored := []jsonfile.Task{
		{ID: 1, Description: "One"},
		{ID: 2, Description: "Two", Priority: "low"},
	}

	domainTasks := mapper.FromStorageSlice(stored)
	assert.Len(t, domainTasks, 2)
	assert.Equal(t, PriorityLow, domainTasks[1].Priority)

	back := mapper.ToStorageSlice(domainTasks)
	assert.Equal(t, stored, back)
}
