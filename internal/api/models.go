package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// CreateUserRequest defines the payload for the create and update user
// endpoints. Both fields are required and the email must look like an
// address.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,contains=@"`
}

// validationMessage translates a validator error into the client-facing
// message for the first failed rule. Missing fields are reported before
// format problems, matching the order the rules are declared in.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if verrs[0].Tag() == "contains" {
			return MsgInvalidEmail
		}
	}
	return MsgMissingFields
}
