package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	t.Run("wraps an underlying error", func(t *testing.T) {
		err := NewUserError("failed to register the user", ErrUnknownUserType)

		assert.Equal(t, "failed to register the user: unknown user type code", err.Error())
		assert.ErrorIs(t, err, ErrUnknownUserType)
	})

	t.Run("message only", func(t *testing.T) {
		err := NewUserError("something went wrong", nil)
		assert.Equal(t, "something went wrong", err.Error())
	})

	t.Run("unwraps to the cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewUserError("context", cause)

		var userErr *UserError
		require.ErrorAs(t, err, &userErr)
		assert.Equal(t, cause, userErr.Unwrap())
	})
}
