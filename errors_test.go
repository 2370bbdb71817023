package validate_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validate"
)

func TestValidationErrorMessage(t *testing.T) {
	t.Run("returns the aggregated message", func(t *testing.T) {
		err := &validate.ValidationError{Message: "name missing, too young"}
		assert.Equal(t, "name missing, too young", err.Error())
	})

	t.Run("falls back to a generic message when empty", func(t *testing.T) {
		err := &validate.ValidationError{}
		assert.Equal(t, "validation failed", err.Error())
	})
}

func TestIsValidationError(t *testing.T) {
	t.Run("recognizes a validator-produced error", func(t *testing.T) {
		v := validate.NotNullable[person]("Person").
			AddRule(func(p person) bool { return p.Age >= 18 }, "too young").
			Build()

		err := v.Validate(&person{Age: 10})
		require.Error(t, err)
		assert.True(t, validate.IsValidationError(err))
	})

	t.Run("recognizes a wrapped validation error", func(t *testing.T) {
		inner := &validate.ValidationError{Message: "too young"}
		wrapped := fmt.Errorf("saving person: %w", inner)
		assert.True(t, validate.IsValidationError(wrapped))
	})

	t.Run("rejects other errors", func(t *testing.T) {
		assert.False(t, validate.IsValidationError(errors.New("connection refused")))
	})

	t.Run("rejects nil", func(t *testing.T) {
		assert.False(t, validate.IsValidationError(nil))
	})
}

func TestExtractValidationError(t *testing.T) {
	t.Run("extracts the typed error from a validator result", func(t *testing.T) {
		v := validate.NotNullable[person]("Person").
			AddRule(func(p person) bool { return p.Age >= 18 }, "too young").
			Build()

		err := v.Validate(&person{Age: 10})
		require.Error(t, err)

		ve := validate.ExtractValidationError(err)
		require.NotNil(t, ve)
		assert.Equal(t, "too young", ve.Message)
	})

	t.Run("extracts through error wrapping", func(t *testing.T) {
		inner := &validate.ValidationError{Message: "too young"}
		wrapped := fmt.Errorf("saving person: %w", fmt.Errorf("validating: %w", inner))

		ve := validate.ExtractValidationError(wrapped)
		require.NotNil(t, ve)
		assert.Same(t, inner, ve)
	})

	t.Run("returns nil for other errors", func(t *testing.T) {
		assert.Nil(t, validate.ExtractValidationError(errors.New("connection refused")))
	})

	t.Run("returns nil for nil", func(t *testing.T) {
		assert.Nil(t, validate.ExtractValidationError(nil))
	})
}
