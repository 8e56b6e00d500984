package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequestValidation(t *testing.T) {
	v := validator.New()

	tests := []struct {
		name            string
		req             CreateUserRequest
		expectedMessage string // empty means valid
	}{
		{
			name: "valid request",
			req:  CreateUserRequest{Name: "Ana", Email: "ana@x.com"},
		},
		{
			name: "plus addressing is valid",
			req:  CreateUserRequest{Name: "Bob", Email: "bob+test@x.com"},
		},
		{
			name:            "empty name",
			req:             CreateUserRequest{Name: "", Email: "ana@x.com"},
			expectedMessage: MsgMissingFields,
		},
		{
			name:            "empty email",
			req:             CreateUserRequest{Name: "Ana", Email: ""},
			expectedMessage: MsgMissingFields,
		},
		{
			name:            "both empty",
			req:             CreateUserRequest{},
			expectedMessage: MsgMissingFields,
		},
		{
			name:            "email without at sign",
			req:             CreateUserRequest{Name: "Ana", Email: "ana.x.com"},
			expectedMessage: MsgInvalidEmail,
		},
		{
			name:            "missing name wins over bad email",
			req:             CreateUserRequest{Name: "", Email: "ana.x.com"},
			expectedMessage: MsgMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if tt.expectedMessage == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectedMessage, validationMessage(err))
		})
	}
}
