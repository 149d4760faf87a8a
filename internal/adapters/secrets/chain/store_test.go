package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lets-share-cli/internal/ports"
)

type stubStore struct {
	getValue string
	getErr   error
	putErr   error
	delErr   error

	gets, puts, deletes int
}

var _ ports.SecretStore = (*stubStore)(nil)

func (s *stubStore) Get(context.Context, string) (string, error) {
	s.gets++
	return s.getValue, s.getErr
}

func (s *stubStore) Put(context.Context, string, string) error {
	s.puts++
	return s.putErr
}

func (s *stubStore) Delete(context.Context, string) error {
	s.deletes++
	return s.delErr
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := &stubStore{getValue: "from-pass"}
	fallback := &stubStore{}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	value, err := store.Get(context.Background(), "share/access_token")
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
	assert.Zero(t, fallback.gets)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := &stubStore{getErr: errors.New("pass unavailable")}
	fallback := &stubStore{getValue: "from-file"}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	value, err := store.Get(context.Background(), "share/access_token")
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := &stubStore{getErr: errors.New("pass failed")}
	fallback := &stubStore{getErr: errors.New("file failed")}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "share/access_token")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutSkipsFallbackOnCancellation(t *testing.T) {
	t.Parallel()

	primary := &stubStore{putErr: context.Canceled}
	fallback := &stubStore{}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	err = store.Put(context.Background(), "share/access_token", "v")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, fallback.puts)
}

func TestStoreDeleteFallsBack(t *testing.T) {
	t.Parallel()

	primary := &stubStore{delErr: errors.New("pass failed")}
	fallback := &stubStore{}
	store, err := NewStore(primary, fallback)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "share/access_token"))
	assert.Equal(t, 1, fallback.deletes)
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, &stubStore{})
	assert.Error(t, err)

	_, err = NewStore(&stubStore{}, nil)
	assert.Error(t, err)
}
