package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/teamcal/teamcal-api/internal/api/shared"
	"github.com/teamcal/teamcal-api/internal/redact"
	"github.com/teamcal/teamcal-api/internal/service/auth"
)

// AuthMiddleware validates session tokens on protected routes.
type AuthMiddleware struct {
	sessions auth.SessionService
}

// NewAuthMiddleware creates an AuthMiddleware with the given dependencies.
func NewAuthMiddleware(sessions auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Authenticate validates the bearer token from the Authorization header
// and places the session in the request context. Task handlers resolve
// the caller's team exclusively from that session.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		session, err := m.sessions.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Session expired")
			case auth.ErrInvalidToken, auth.ErrMissingTeam:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid session")
			default:
				slog.Error("failed to validate session token", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSession extracts the authenticated session from the request context.
func GetSession(r *http.Request) (*auth.Session, bool) {
	session, ok := r.Context().Value(shared.SessionContextKey).(*auth.Session)
	return session, ok
}
