package auth

import (
	"context"
	"time"
)

// Session is the authenticated identity extracted from a valid token. It
// is the only capability task handlers accept: the team in here, never a
// client-supplied parameter, scopes every task operation.
type Session struct {
	Username  string
	Team      string
	Nickname  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionService issues and validates session tokens.
type SessionService interface {
	// IssueToken creates a signed token for the given identity.
	IssueToken(ctx context.Context, username, team, nickname string) (string, error)

	// ValidateToken verifies a token and returns the session it carries.
	// Returns ErrInvalidToken, ErrExpiredToken, or ErrMissingTeam.
	ValidateToken(ctx context.Context, token string) (*Session, error)
}
