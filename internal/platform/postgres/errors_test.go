package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/lmeyers/users-api/internal/store"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error // nil means the original error is returned unchanged
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: nil,
		},
		{
			name:     "no rows maps to user not found",
			err:      sql.ErrNoRows,
			expected: store.ErrUserNotFound,
		},
		{
			name:     "wrapped no rows maps to user not found",
			err:      fmt.Errorf("scan: %w", sql.ErrNoRows),
			expected: store.ErrUserNotFound,
		},
		{
			name:     "unique violation maps to email exists",
			err:      &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			expected: store.ErrEmailExists,
		},
		{
			name:     "other pg error passes through",
			err:      &pgconn.PgError{Code: "57P01"}, // admin_shutdown
			expected: nil,
		},
		{
			name:     "plain error passes through",
			err:      errors.New("connection reset by peer"),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)
			if tt.err == nil {
				assert.NoError(t, mapped)
				return
			}
			if tt.expected == nil {
				assert.Equal(t, tt.err, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tt.expected)
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t,
		IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("not a pg error")))
	assert.False(t, IsUniqueViolation(nil))
}

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckRowsAffected(t *testing.T) {
	t.Run("rows affected", func(t *testing.T) {
		assert.NoError(t, CheckRowsAffected(fakeResult{rows: 1}))
	})

	t.Run("zero rows is not found", func(t *testing.T) {
		assert.ErrorIs(t, CheckRowsAffected(fakeResult{rows: 0}), store.ErrUserNotFound)
	})

	t.Run("rows affected error propagates", func(t *testing.T) {
		err := CheckRowsAffected(fakeResult{err: errors.New("driver does not support RowsAffected")})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("nil result", func(t *testing.T) {
		assert.Error(t, CheckRowsAffected(nil))
	})
}
