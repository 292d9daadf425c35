package apperrors

import (
	"errors"
	"net/http"
)

// Sentinel errors for every failure the API surfaces to callers. Services
// return these (possibly wrapped); controllers translate them to statuses.
var (
	ErrUnauthenticated    = errors.New("you must be signed in to do that")
	ErrForbidden          = errors.New("you do not have permission to do that")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidResetToken  = errors.New("this token is either invalid or expired")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPaymentDeclined    = errors.New("payment was declined")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrEmptyCart          = errors.New("your cart is empty")
)

// StatusCode maps an error to the HTTP status controllers should respond
// with. Anything unrecognized is an internal error.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidResetToken),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrEmailTaken),
		errors.Is(err, ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, ErrPaymentDeclined):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
