// Package auth verifies bearer tokens and resolves them to an Identity.
package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Identity is the caller behind a verified token.
type Identity struct {
	Subject string `json:"subject"`
	IsAdmin bool   `json:"is_admin"`
}

// Authenticator verifies a raw token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
}

// TokenIssuer mints tokens for locally verified credentials.
type TokenIssuer interface {
	IssueToken(subject string, admin bool) (string, error)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrMissingToken
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
