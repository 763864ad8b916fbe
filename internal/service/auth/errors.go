// Package auth issues and validates the stateless session tokens that
// carry a caller's identity (username, team, nickname) between requests.
package auth

import "errors"

// Sentinel errors returned by token validation. The API layer maps all of
// them to 401 responses.
var (
	// ErrInvalidToken is returned for malformed tokens or bad signatures.
	ErrInvalidToken = errors.New("invalid session token")

	// ErrExpiredToken is returned when a token's lifetime has passed.
	ErrExpiredToken = errors.New("session token expired")

	// ErrMissingTeam is returned when a token validates but carries no
	// team claim; such a session cannot perform any task operation.
	ErrMissingTeam = errors.New("session token carries no team")
)
