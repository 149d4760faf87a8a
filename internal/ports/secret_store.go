package ports

import "context"

// SecretStore is the durable key-value surface session credentials are
// persisted to. Keys are namespaced paths such as "share/access_token".
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
