package validation

import (
	"fmt"

	"github.com/codeforgood-org/todo/internal/config"
	"github.com/codeforgood-org/todo/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a new task validator with configuration
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateDescription validates a task description for creation
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("task description")
		return validationError
	}

	if !tv.validator.IsValidDescriptionLength(trimmed) {
		validationError.AddInvalidLengthError("task description", trimmed,
			tv.validator.DescriptionMinLength(), tv.validator.DescriptionMaxLength())
		return validationError
	}

	return nil
}

// ValidatePriority validates an optional priority level
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if priority.IsValid() {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("priority", string(priority), "use high, medium, or low")
	return validationError
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if tv.validator.IsValidTaskID(id) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidRangeError("task id", id, "must be positive")
	return validationError
}

// ValidatePosition validates a 1-based task list position
func (tv *TaskValidator) ValidatePosition(position int) error {
	if tv.validator.IsValidPosition(position) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidRangeError("task number", position, "must be 1 or greater")
	return validationError
}

// ValidateTaskForCreation validates everything needed to create a task
func (tv *TaskValidator) ValidateTaskForCreation(description string, priority domain.Priority) error {
	if err := tv.ValidateDescription(description); err != nil {
		return err
	}
	return tv.ValidatePriority(priority)
}

// GetValidDescription returns the cleaned description, or an error if invalid
func (tv *TaskValidator) GetValidDescription(description string) (string, error) {
	if err := tv.ValidateDescription(description); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(description), nil
}

// PositionRangeError builds a descriptive error for an out-of-range position
func (tv *TaskValidator) PositionRangeError(position, count int) error {
	validationError := NewValidationError()
	validationError.AddInvalidRangeError("task number", position,
		fmt.Sprintf("choose a number between 1 and %d", count))
	return validationError
}
