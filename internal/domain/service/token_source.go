package service

import "context"

// TokenSource supplies the bearer token attached to outgoing API requests.
// Implementations are expected to reject expired tokens before a request is
// ever issued.
type TokenSource interface {
	// Token returns the current bearer token, or an error when none is
	// available or the token has expired.
	Token(ctx context.Context) (string, error)
}
