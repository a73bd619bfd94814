package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeforgood-org/todo/internal/config"
)

func TestIsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("task"))
	assert.True(t, v.IsNonEmptyString("  task  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("   "))
	assert.False(t, v.IsNonEmptyString("\t\n"))
}

func TestIsValidStringLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidStringLength("abc", 1, 5))
	assert.True(t, v.IsValidStringLength("  abc  ", 3, 3))
	assert.False(t, v.IsValidStringLength("", 1, 5))
	assert.False(t, v.IsValidStringLength("abcdef", 1, 5))
}

func TestIsValidDescriptionLength(t *testing.T) {
	t.Run("uses defaults without config", func(t *testing.T) {
		v := NewValidator()
		assert.True(t, v.IsValidDescriptionLength("task"))
		assert.True(t, v.IsValidDescriptionLength(strings.Repeat("a", 500)))
		assert.False(t, v.IsValidDescriptionLength(strings.Repeat("a", 501)))
	})

	t.Run("uses configured limits", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Validation.DescriptionMaxLength = 10
		v := NewValidatorWithConfig(cfg)

		assert.True(t, v.IsValidDescriptionLength("short"))
		assert.False(t, v.IsValidDescriptionLength("definitely too long"))
	})
}

func TestIsValidTaskID(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidTaskID(1))
	assert.True(t, v.IsValidTaskID(9999))
	assert.False(t, v.IsValidTaskID(0))
	assert.False(t, v.IsValidTaskID(-3))
}

func TestIsValidPosition(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidPosition(1))
	assert.False(t, v.IsValidPosition(0))
	assert.False(t, v.IsValidPosition(-1))
}

func TestTrimAndValidateString(t *testing.T) {
	v := NewValidator()
	assert.Equal(t, "task", v.TrimAndValidateString("  task  "))
}
