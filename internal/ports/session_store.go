package ports

import (
	"context"

	"github.com/bnema/lets-share-cli/internal/domain"
)

// SessionStore owns the current session. Get returns
// domain.ErrSessionNotFound when no session is persisted; malformed
// persisted data is reported the same way so a broken store degrades to
// logged-out, never to a half-populated session.
type SessionStore interface {
	Get(ctx context.Context) (domain.Session, error)
	Set(ctx context.Context, session domain.Session) error
	SetAccessToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// CredentialProvider is the narrow capability the HTTP gateway holds on
// the session store: read the current tokens, persist a refreshed
// access token, and wipe the session on fatal auth failure. Tokens are
// re-read on every use, never cached across calls.
type CredentialProvider interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	StoreAccessToken(ctx context.Context, token string) error
	ClearSession(ctx context.Context) error
}
