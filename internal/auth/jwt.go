package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "quiz-service"

// Claims carried by locally issued tokens.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// JWTAuthenticator issues and verifies HS256 tokens with a shared secret.
type JWTAuthenticator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTAuthenticator(secret string, ttl time.Duration) *JWTAuthenticator {
	return &JWTAuthenticator{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (a *JWTAuthenticator) IssueToken(subject string, admin bool) (string, error) {
	now := a.now()
	claims := &Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, tokenStr string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (interface{}, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{Subject: claims.Subject, IsAdmin: claims.Admin}, nil
}
