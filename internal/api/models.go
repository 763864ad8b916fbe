package api

// Common request/response structures.

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	// Token is the session token used for API authorization.
	Token string `json:"token"`

	// Username, Team, and Nickname echo the authenticated identity so
	// clients can render the calendar header without decoding the token.
	Username string `json:"username"`
	Team     string `json:"team"`
	Nickname string `json:"nickname,omitempty"`
}

// StatusResponse is the plain status-text reply for task mutations.
type StatusResponse struct {
	Status string `json:"status"`
}
