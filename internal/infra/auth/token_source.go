// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/config"
	domainerrors "github.com/cetler74/linkuupapp-sub002/internal/domain/errors"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/service"
)

// staticTokenSource serves a configured bearer token. When the token is a
// JWT its expiry is checked client-side on every call, so an expired session
// fails before a request is ever put on the wire. Opaque tokens are passed
// through untouched.
type staticTokenSource struct {
	token string
	now   func() time.Time
}

// NewStaticTokenSource is the constructor for staticTokenSource.
func NewStaticTokenSource(cfg *config.Config) service.TokenSource {
	return &staticTokenSource{
		token: cfg.API.Token,
		now:   time.Now,
	}
}

// Token returns the configured bearer token, rejecting expired JWTs.
func (s *staticTokenSource) Token(ctx context.Context) (string, error) {
	if s.token == "" {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "no api token configured")
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.token, claims); err != nil {
		// Not a JWT. Treat it as an opaque token and let the server decide.
		return s.token, nil
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return s.token, nil
	}

	if expiry.Before(s.now()) {
		return "", errors.Wrap(domainerrors.ErrUnauthorized, "api token expired")
	}

	return s.token, nil
}
