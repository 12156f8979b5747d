package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("post_id", "must be an integer", ErrInvalidID)

	assert.Equal(t, "post_id must be an integer", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidID), "should match its sentinel")
	assert.True(t, errors.Is(err, ErrValidation), "should always match ErrValidation")

	wrapped := fmt.Errorf("parse path: %w", err)
	var ve *ValidationError
	assert.True(t, errors.As(wrapped, &ve))
	assert.Equal(t, "post_id", ve.Field)
}

func TestNewValidationErrorDefaultsSentinel(t *testing.T) {
	err := NewValidationError("user_id", "is required", nil)

	assert.True(t, errors.Is(err, ErrValidation))
	assert.False(t, errors.Is(err, ErrInvalidID))
}
