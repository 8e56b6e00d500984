package store

import (
	"context"

	"github.com/lmeyers/users-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// List retrieves all users. The returned slice is empty, never nil,
	// when no users exist.
	List(ctx context.Context) ([]domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create saves a new user and returns it with the store-assigned ID.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, name, email string) (*domain.User, error)

	// Update modifies an existing user's name and email and returns the
	// updated record.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, id int64, name, email string) (*domain.User, error)

	// Delete removes a user by their ID.
	// Returns ErrUserNotFound if the user does not exist. The operation is
	// permanent; repeating it for the same ID yields ErrUserNotFound.
	Delete(ctx context.Context, id int64) error
}
