package slackexport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthError(t *testing.T) {
	underlying := errors.New("invalid_auth")
	err := &AuthError{Err: underlying}

	assert.Equal(t, "failed to authenticate: invalid_auth", err.Error())
	assert.ErrorIs(t, err, underlying)
	assert.Equal(t, underlying, errors.Unwrap(err))

	wrapped := fmt.Errorf("run: %w", err)
	var authErr *AuthError
	assert.ErrorAs(t, wrapped, &authErr)
}
