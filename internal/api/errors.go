package api

import (
	"errors"
	"net/http"

	"github.com/lmeyers/users-api/internal/api/shared"
	"github.com/lmeyers/users-api/internal/domain"
	"github.com/lmeyers/users-api/internal/store"
)

// Client-facing error messages. This is a closed set: 400 responses carry
// one of the actionable messages, and every 500 response carries
// MsgInternalError regardless of cause.
const (
	MsgUserNotFound    = "user not found"
	MsgEmailRegistered = "email already registered"
	MsgMissingFields   = "name and email are required"
	MsgInvalidEmail    = "invalid email format"
	MsgInvalidBody     = "invalid request body"
	MsgInvalidUserID   = "invalid user id"
	MsgInternalError   = "internal server error"
)

// MapErrorToStatusCode maps persistence errors to HTTP status codes.
// Not-found and duplicate outcomes are client-fixable and map to 400;
// everything else is a server fault and maps to 500. The mapping is total:
// an unrecognized error never propagates its own status or message.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrMissingFields),
		errors.Is(err, domain.ErrInvalidEmail):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SafeErrorMessage returns the sanitized, client-facing message for a
// persistence error. Raw error details never appear in the result.
func SafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrNotFound):
		return MsgUserNotFound
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrDuplicate):
		return MsgEmailRegistered
	case errors.Is(err, domain.ErrMissingFields):
		return MsgMissingFields
	case errors.Is(err, domain.ErrInvalidEmail):
		return MsgInvalidEmail
	default:
		return MsgInternalError
	}
}

// respondStoreError classifies a persistence error and writes the matching
// error envelope. The underlying cause is logged, never surfaced.
func respondStoreError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SafeErrorMessage(err), err)
}
