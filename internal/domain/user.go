package domain

import (
	"errors"
	"strings"
)

// Common validation errors
var (
	ErrMissingFields = errors.New("name and email are required")
	ErrInvalidEmail  = errors.New("invalid email format")
)

// User represents a registered user of the service.
// The ID is assigned by the persistence layer on creation.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Validate checks that the user carries valid data.
// Returns ErrMissingFields if name or email is empty, and ErrInvalidEmail
// if the email does not look like an address.
func (u *User) Validate() error {
	if u.Name == "" || u.Email == "" {
		return ErrMissingFields
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}
