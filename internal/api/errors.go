package api

import (
	"errors"
	"net/http"

	"github.com/teamcal/teamcal-api/internal/domain"
	"github.com/teamcal/teamcal-api/internal/identity"
	"github.com/teamcal/teamcal-api/internal/service/auth"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so no
// internal error type leaks to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingTeam),
		errors.Is(err, identity.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrIndexOutOfRange):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	// Storage and delivery failures are server-side conditions.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for err.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case errors.Is(err, identity.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingTeam):
		return "Invalid session"
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrIndexOutOfRange):
		return err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "Not found"
	default:
		return "An internal error occurred"
	}
}
