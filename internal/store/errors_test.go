package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorClassification(t *testing.T) {
	t.Run("entity-specific errors match their generic form", func(t *testing.T) {
		assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
		assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)
	})

	t.Run("wrapped errors stay classifiable", func(t *testing.T) {
		wrapped := fmt.Errorf("get user 7: %w", ErrUserNotFound)
		assert.True(t, IsNotFoundError(wrapped))
		assert.False(t, IsDuplicateError(wrapped))
	})

	t.Run("unrelated errors match nothing", func(t *testing.T) {
		err := errors.New("disk full")
		assert.False(t, IsNotFoundError(err))
		assert.False(t, IsDuplicateError(err))
	})

	t.Run("not found and duplicate are disjoint", func(t *testing.T) {
		assert.False(t, IsDuplicateError(ErrUserNotFound))
		assert.False(t, IsNotFoundError(ErrEmailExists))
	})
}
