package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/teamcal/teamcal-api/internal/config"
)

// hmacSessionService implements SessionService with HMAC-SHA256 signing.
type hmacSessionService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // injectable for testing
	clockSkew     time.Duration
}

// sessionClaims is the JWT claim set for a session token.
type sessionClaims struct {
	Team     string `json:"team"`
	Nickname string `json:"nickname,omitempty"`
	jwt.RegisteredClaims
}

var _ SessionService = (*hmacSessionService)(nil)

// NewSessionService creates a SessionService from the auth configuration.
func NewSessionService(cfg config.AuthConfig) (SessionService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}
	return &hmacSessionService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// IssueToken creates a signed session token carrying the identity claims.
func (s *hmacSessionService) IssueToken(ctx context.Context, username, team, nickname string) (string, error) {
	now := s.timeFunc()
	claims := sessionClaims{
		Team:     team,
		Nickname: nickname,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		slog.Error("failed to sign session token",
			"error", err,
			"username", username,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("signing session token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature and time claims and returns the
// session. A token without a team claim is rejected: no task operation can
// be scoped without one.
func (s *hmacSessionService) ValidateToken(ctx context.Context, tokenString string) (*Session, error) {
	now := s.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&sessionClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			slog.Debug("session token expired", "error", err)
			return nil, ErrExpiredToken
		}
		slog.Debug("session token validation failed", "error", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Team == "" {
		return nil, ErrMissingTeam
	}

	return &Session{
		Username:  claims.Subject,
		Team:      claims.Team,
		Nickname:  claims.Nickname,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
