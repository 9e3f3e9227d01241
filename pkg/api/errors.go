package api

import (
	"errors"
	"net/http"

	"bank-accounts/pkg/account"
)

var (
	// ErrAccountNotFound is returned when no account has the requested ID
	ErrAccountNotFound = errors.New("api: account not found")

	// ErrInvalidRequest is returned when a request body cannot be decoded or
	// is missing required fields
	ErrInvalidRequest = errors.New("api: invalid request")
)

// statusFor maps an error to the HTTP status returned to clients.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, account.ErrUnknownVariant):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
