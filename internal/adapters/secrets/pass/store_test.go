package pass

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorePutUsesPassInsert(t *testing.T) {
	t.Parallel()

	called := false
	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			called = true
			assert.Equal(t, context.Background(), ctx)
			assert.Equal(t, []string{"insert", "-m", "-f", "lets-share/share/access_token"}, args)
			assert.Equal(t, "token-value\n", input)
			return "", "", nil
		},
	}

	err := store.Put(context.Background(), "share/access_token", "token-value")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStoreGetUsesPassShowAndTrimsTrailingNewline(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"show", "lets-share/share/access_token"}, args)
			assert.Empty(t, input)
			return "token-value\n", "", nil
		},
	}

	value, err := store.Get(context.Background(), "share/access_token")
	require.NoError(t, err)
	assert.Equal(t, "token-value", value)
}

func TestStoreDeleteUsesPassRemove(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			assert.Equal(t, []string{"rm", "-f", "lets-share/share/refresh_token"}, args)
			assert.Empty(t, input)
			return "", "", nil
		},
	}

	err := store.Delete(context.Background(), "share/refresh_token")
	require.NoError(t, err)
}

func TestStoreNamespacesEntriesUnderAppFolder(t *testing.T) {
	t.Parallel()

	var entries []string
	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			entries = append(entries, args[len(args)-1])
			return "", "", nil
		},
	}

	require.NoError(t, store.Put(context.Background(), "share/user_data", "{}"))
	_, err := store.Get(context.Background(), "share/user_data")
	require.NoError(t, err)
	require.NoError(t, store.Delete(context.Background(), "share/user_data"))

	for _, entry := range entries {
		assert.Equal(t, "lets-share/share/user_data", entry)
	}
}

func TestStoreGetReturnsClearError(t *testing.T) {
	t.Parallel()

	store := &Store{
		run: func(ctx context.Context, input string, args ...string) (string, string, error) {
			return "", "entry not found", errors.New("exit status 1")
		},
	}

	_, err := store.Get(context.Background(), "share/user_data")
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass get")
	assert.ErrorContains(t, err, "lets-share/share/user_data")
	assert.ErrorContains(t, err, "entry not found")
}
