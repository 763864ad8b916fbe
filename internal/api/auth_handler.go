package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/teamcal/teamcal-api/internal/api/shared"
	"github.com/teamcal/teamcal-api/internal/identity"
	"github.com/teamcal/teamcal-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	accounts identity.Provider
	sessions auth.SessionService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(accounts identity.Provider, sessions auth.SessionService) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
		sessions: sessions,
	}
}

// Login handles the /auth/login endpoint. A successful login issues a
// session token carrying the account's team, which scopes every
// subsequent task operation.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	acct, err := h.accounts.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		slog.Error("authentication failed", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	token, err := h.sessions.IssueToken(r.Context(), acct.Username, acct.Team, acct.Nickname)
	if err != nil {
		slog.Error("failed to issue session token", "error", err, "username", acct.Username)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:    token,
		Username: acct.Username,
		Team:     acct.Team,
		Nickname: acct.Nickname,
	})
}
