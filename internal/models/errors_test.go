package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestErrorConstructors(t *testing.T) {
	assert.Equal(t, CodeNotFound, NewNotFoundError("Blog", 7).Code)
	assert.Equal(t, "Blog with ID 7 not found", NewNotFoundError("Blog", 7).Message)
	assert.Equal(t, CodeValidation, NewValidationError("bad input").Code)
	assert.Equal(t, CodeUnauthorized, NewUnauthorizedError("no token").Code)
	assert.Equal(t, CodeForbidden, NewForbiddenError("not yours").Code)
	assert.Equal(t, CodeDepthExceeded, NewDepthExceededError().Code)
	assert.Equal(t, CodeInternal, NewInternalError(errors.New("boom")).Code)
}

func TestIsValidSharePlatform(t *testing.T) {
	for _, p := range SharePlatforms {
		assert.True(t, IsValidSharePlatform(p), p)
	}
	assert.False(t, IsValidSharePlatform("myspace"))
	assert.False(t, IsValidSharePlatform("Twitter"), "platform matching is case sensitive after normalization")
}
