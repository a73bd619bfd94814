package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeforgood-org/todo/internal/domain"
)

func TestValidateDescription(t *testing.T) {
	tv := NewTaskValidator()

	t.Run("accepts a normal description", func(t *testing.T) {
		assert.NoError(t, tv.ValidateDescription("Buy groceries"))
	})

	t.Run("rejects empty and whitespace-only descriptions", func(t *testing.T) {
		for _, description := range []string{"", "   ", "\t\n"} {
			err := tv.ValidateDescription(description)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		}
	})

	t.Run("rejects over-long descriptions", func(t *testing.T) {
		err := tv.ValidateDescription(strings.Repeat("x", 501))
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, validationErr.GetUserFriendlyMessage(), "between 1 and 500")
	})
}

func TestValidatePriority(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidatePriority(domain.PriorityHigh))
	assert.NoError(t, tv.ValidatePriority(domain.PriorityNone))

	err := tv.ValidatePriority(domain.Priority("urgent"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestValidateTaskID(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidateTaskID(1))
	assert.Error(t, tv.ValidateTaskID(0))
	assert.Error(t, tv.ValidateTaskID(-7))
}

func TestValidatePosition(t *testing.T) {
	tv := NewTaskValidator()

	assert.NoError(t, tv.ValidatePosition(1))
	assert.Error(t, tv.ValidatePosition(0))
	assert.Error(t, tv.ValidatePosition(-1))
}

func TestGetValidDescription(t *testing.T) {
	tv := NewTaskValidator()

	cleaned, err := tv.GetValidDescription("  Water the plants  ")
	require.NoError(t, err)
	assert.Equal(t, "Water the plants", cleaned)

	_, err = tv.GetValidDescription("   ")
	assert.Error(t, err)
}

func TestPositionRangeError(t *testing.T) {
	tv := NewTaskValidator()

	err := tv.PositionRangeError(9, 3)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.GetUserFriendlyMessage(), "between 1 and 3")
}
