package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLIError verifies the custom error type used for exit code mapping.
func TestCLIError(t *testing.T) {
	t.Run("simple error", func(t *testing.T) {
		err := NewCLIError(ExitConfigError, "item count must not be negative")
		assert.Equal(t, ExitConfigError, err.Code)
		assert.Equal(t, "item count must not be negative", err.Error())
		assert.Nil(t, err.Unwrap())
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := errors.New("permission denied")
		err := WrapCLIError(ExitConfigError, "failed to read config", inner)
		assert.Equal(t, ExitConfigError, err.Code)
		assert.Equal(t, "failed to read config: permission denied", err.Error())
		assert.Equal(t, inner, err.Unwrap())
	})

	t.Run("errors.As through fmt wrapping", func(t *testing.T) {
		inner := NewCLIError(ExitConfigNotFound, "config file not found")
		wrapped := fmt.Errorf("run: %w", inner)

		var cliErr *CLIError
		require.True(t, errors.As(wrapped, &cliErr))
		assert.Equal(t, ExitConfigNotFound, cliErr.Code)
	})
}
