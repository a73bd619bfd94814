// Package exitcode defines exit codes for the CLI.
package exitcode

import (
	"github.com/codeforgood-org/todo/internal/errors"
)

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty description, bad index).
	UserError = 1

	// StorageError indicates the task or config file could not be read or written.
	StorageError = 2
)

// FromError maps an error to a process exit code.
func FromError(err error) int {
	if err == nil {
		return Success
	}
	if appErr, ok := errors.AsAppError(err); ok {
		switch appErr.Type {
		case errors.ErrorTypeStorage, errors.ErrorTypePermission:
			return StorageError
		}
	}
	return UserError
}
