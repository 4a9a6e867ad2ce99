package services

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/SAP-F-2025/quiz-service/internal/auth"
)

type LoginResult struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// AdminCredentials are the single set of authoring credentials checked locally.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

type authService struct {
	issuer      auth.TokenIssuer
	credentials AdminCredentials
	opLogger    *ServiceLogger
}

// NewAuthService creates the local login service. A nil issuer means tokens
// come from an external provider and Login is unavailable.
func NewAuthService(issuer auth.TokenIssuer, credentials AdminCredentials, logger *slog.Logger) AuthService {
	return &authService{
		issuer:      issuer,
		credentials: credentials,
		opLogger:    NewServiceLogger(logger, LogConfig{Service: "quiz-service", Component: "auth"}),
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (result *LoginResult, err error) {
	op := s.opLogger.WithOperation(ctx, "login", username)
	defer func() { op.LogResult("", err) }()

	if s.issuer == nil {
		return nil, ErrLoginUnavailable
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.credentials.Username)) == 1
	passwordOK := auth.CheckPassword(s.credentials.PasswordHash, password)
	if !usernameOK || !passwordOK {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issuer.IssueToken(username, true)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Username: username, Token: token}, nil
}
