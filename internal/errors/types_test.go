package errors

import (
	"errors"
	"testing"
)

func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		want      string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypeStorage, "storage"},
		{ErrorTypeInvalidInput, "invalid_input"},
		{ErrorTypeCorruption, "corruption"},
		{ErrorTypePermission, "permission"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.errorType.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", tt.errorType, got, tt.want)
		}
	}
}

func TestAppErrorError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &AppError{Type: ErrorTypeNotFound, Message: "task not found: 1"}
		want := "not_found: task not found: 1"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("with cause", func(t *testing.T) {
		err := &AppError{
			Type:    ErrorTypeStorage,
			Message: "write failed",
			Cause:   errors.New("disk full"),
		}
		want := "storage: write failed (caused by: disk full)"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestAppErrorIs(t *testing.T) {
	a := &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}
	b := &AppError{Type: ErrorTypeNotFound, Code: "NOT_FOUND"}
	c := &AppError{Type: ErrorTypeStorage, Code: "STORAGE_ERROR"}

	if !a.Is(b) {
		t.Error("errors with matching type and code should be equal")
	}
	if a.Is(c) {
		t.Error("errors with different types should not be equal")
	}
	if a.Is(errors.New("plain")) {
		t.Error("AppError should never match a plain error")
	}
}

func TestAppErrorContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeInvalidInput, Message: "bad input"}

	err.WithContext("field", "priority").WithContext("value", "urgent")

	if field, ok := err.GetContext("field"); !ok || field != "priority" {
		t.Errorf("GetContext(field) = %v, %v; want priority, true", field, ok)
	}
	if _, ok := err.GetContext("missing"); ok {
		t.Error("GetContext should report missing keys")
	}
}
