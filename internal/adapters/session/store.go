// Package session persists the current session to a durable key-value
// secret store using the keys share/access_token, share/refresh_token
// and share/user_data (a JSON-encoded profile). Absence of any key is
// a valid logged-out state, not an error.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/lets-share-cli/internal/domain"
	"github.com/bnema/lets-share-cli/internal/ports"
)

const (
	accessTokenKey  = "share/access_token"
	refreshTokenKey = "share/refresh_token"
	userDataKey     = "share/user_data"
)

// Store implements both ports.SessionStore (for the coordinators) and
// ports.CredentialProvider (the narrow capability the gateway holds).
type Store struct {
	secrets ports.SecretStore
}

var (
	_ ports.SessionStore       = (*Store)(nil)
	_ ports.CredentialProvider = (*Store)(nil)
)

func NewStore(secrets ports.SecretStore) *Store {
	return &Store{secrets: secrets}
}

// Get rebuilds the session from the persisted keys. Any read failure
// or malformed payload degrades to domain.ErrSessionNotFound: the
// store fails open to logged-out, never to a half-populated session.
func (s *Store) Get(ctx context.Context) (domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return domain.Session{}, err
	}

	accessToken, err := s.secrets.Get(ctx, accessTokenKey)
	if err != nil || accessToken == "" {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	refreshToken, err := s.secrets.Get(ctx, refreshTokenKey)
	if err != nil {
		refreshToken = ""
	}

	userData, err := s.secrets.Get(ctx, userDataKey)
	if err != nil {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	var user domain.User
	if err := json.Unmarshal([]byte(userData), &user); err != nil {
		return domain.Session{}, domain.ErrSessionNotFound
	}

	return domain.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *Store) Set(ctx context.Context, sess domain.Session) error {
	userData, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encode user data: %w", err)
	}

	if err := s.secrets.Put(ctx, accessTokenKey, sess.AccessToken); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	if err := s.secrets.Put(ctx, refreshTokenKey, sess.RefreshToken); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	if err := s.secrets.Put(ctx, userDataKey, string(userData)); err != nil {
		return fmt.Errorf("store user data: %w", err)
	}

	return nil
}

func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	if err := s.secrets.Put(ctx, accessTokenKey, token); err != nil {
		return fmt.Errorf("store access token: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{accessTokenKey, refreshTokenKey, userDataKey} {
		if err := s.secrets.Delete(ctx, key); err != nil {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

// AccessToken returns the current access token, or "" when absent.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token, err := s.secrets.Get(ctx, accessTokenKey)
	if err != nil {
		return "", nil
	}
	return token, nil
}

// RefreshToken returns the current refresh token, or "" when absent.
func (s *Store) RefreshToken(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	token, err := s.secrets.Get(ctx, refreshTokenKey)
	if err != nil {
		return "", nil
	}
	return token, nil
}

func (s *Store) StoreAccessToken(ctx context.Context, token string) error {
	return s.SetAccessToken(ctx, token)
}

func (s *Store) ClearSession(ctx context.Context) error {
	return s.Clear(ctx)
}
