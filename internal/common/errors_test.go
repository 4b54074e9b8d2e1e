package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	t.Run("formats message with cause", func(t *testing.T) {
		err := NewUserError("failed to create API client", ErrInvalidConfig)
		assert.Equal(t, "failed to create API client: invalid configuration", err.Error())
	})

	t.Run("formats message without cause", func(t *testing.T) {
		err := &UserError{UserMessage: "something went sideways"}
		assert.Equal(t, "something went sideways", err.Error())
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		err := NewUserError("failed to create API client", ErrMissingConfig)
		assert.ErrorIs(t, err, ErrMissingConfig)
	})
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: %w", ErrTaxonomyLoad, ErrAPIUnavailable)
	assert.ErrorIs(t, wrapped, ErrTaxonomyLoad)
	assert.ErrorIs(t, wrapped, ErrAPIUnavailable)

	var userErr *UserError
	require.True(t, errors.As(NewUserError("boom", ErrNoFile), &userErr))
	assert.Equal(t, "boom", userErr.UserMessage)
}
