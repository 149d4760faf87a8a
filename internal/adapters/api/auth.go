package api

import (
	"context"
	"fmt"

	"github.com/bnema/lets-share-cli/internal/domain"
	"github.com/bnema/lets-share-cli/internal/ports"
)

const (
	signupPath = "/auth/signup"
	loginPath  = "/auth/login"
)

// AuthAPI maps auth actions onto gateway calls. Login is the only
// operation that touches the session store: the returned credential
// pair is handed over before the result reaches the caller.
type AuthAPI struct {
	client   *Client
	sessions ports.SessionStore
}

func NewAuthAPI(client *Client, sessions ports.SessionStore) *AuthAPI {
	return &AuthAPI{client: client, sessions: sessions}
}

func (a *AuthAPI) SignUp(ctx context.Context, req domain.SignUpRequest) (domain.User, error) {
	if err := req.Validate(); err != nil {
		return domain.User{}, err
	}

	var user domain.User
	if err := a.client.Post(ctx, signupPath, req, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

type loginResponse struct {
	User         domain.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	ExpiresIn    int64       `json:"expires_in"`
	TokenType    string      `json:"token_type"`
}

func (a *AuthAPI) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if err := creds.Validate(); err != nil {
		return domain.Session{}, err
	}

	var resp loginResponse
	if err := a.client.Post(ctx, loginPath, creds, &resp); err != nil {
		return domain.Session{}, err
	}

	tokenType := resp.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}

	session := domain.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		TokenType:    tokenType,
		User:         resp.User,
	}

	if err := a.sessions.Set(ctx, session); err != nil {
		return domain.Session{}, fmt.Errorf("persist session: %w", err)
	}

	return session, nil
}
