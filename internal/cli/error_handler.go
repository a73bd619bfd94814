package cli

import (
	"fmt"

	"github.com/codeforgood-org/todo/internal/errors"
	"github.com/codeforgood-org/todo/internal/validation"
)

// CommandError carries a user-friendly message while keeping the original
// error available for unwrapping, so exit-code mapping still sees the type.
type CommandError struct {
	Message string
	Cause   error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *CommandError) Unwrap() error {
	return e.Cause
}

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return &CommandError{
			Message: fmt.Sprintf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage()),
			Cause:   err,
		}
	}

	if _, ok := errors.AsAppError(err); ok {
		return &CommandError{
			Message: fmt.Sprintf("failed to %s: %s", operation, errors.GetUserMessage(err)),
			Cause:   err,
		}
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple provides user-friendly error messages without operation context
func (eh *ErrorHandler) HandleSimple(err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return &CommandError{Message: validationErr.GetUserFriendlyMessage(), Cause: err}
	}

	if _, ok := errors.AsAppError(err); ok {
		return &CommandError{Message: errors.GetUserMessage(err), Cause: err}
	}

	return err
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// IsStorageError checks if an error is a storage error
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeStorage)
}
