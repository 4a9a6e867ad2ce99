package auth

import (
	"context"
	"errors"

	"github.com/casdoor/casdoor-go-sdk/casdoorsdk"
)

type CasdoorConfig struct {
	Endpoint     string
	ClientID     string
	ClientSecret string
	Certificate  string
	Organization string
	Application  string
}

// CasdoorAuthenticator verifies tokens issued by a Casdoor server. Admin
// rights follow the IsAdmin flag of the Casdoor user.
type CasdoorAuthenticator struct {
	client *casdoorsdk.Client
}

func NewCasdoorAuthenticator(cfg CasdoorConfig) (*CasdoorAuthenticator, error) {
	if cfg.Endpoint == "" || cfg.Certificate == "" {
		return nil, errors.New("casdoor endpoint and certificate are required")
	}
	client := casdoorsdk.NewClient(cfg.Endpoint, cfg.ClientID, cfg.ClientSecret,
		cfg.Certificate, cfg.Organization, cfg.Application)
	return &CasdoorAuthenticator{client: client}, nil
}

func (a *CasdoorAuthenticator) Authenticate(_ context.Context, token string) (*Identity, error) {
	claims, err := a.client.ParseJwtToken(token)
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	subject := claims.User.Name
	if claims.User.Owner != "" {
		subject = claims.User.Owner + "/" + claims.User.Name
	}
	return &Identity{Subject: subject, IsAdmin: claims.User.IsAdmin}, nil
}
