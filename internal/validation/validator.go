package validation

import (
	"strings"

	"github.com/codeforgood-org/todo/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks if a description length is within configured limits
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, v.DescriptionMinLength(), v.DescriptionMaxLength())
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// IsValidPosition checks if a 1-based list position is plausible
func (v *Validator) IsValidPosition(position int) bool {
	return position > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// DescriptionMinLength returns the configured minimum description length or default
func (v *Validator) DescriptionMinLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMinLength
	}
	return 1
}

// DescriptionMaxLength returns the configured maximum description length or default
func (v *Validator) DescriptionMaxLength() int {
	if v.config != nil {
		return v.config.Validation.DescriptionMaxLength
	}
	return 500
}
