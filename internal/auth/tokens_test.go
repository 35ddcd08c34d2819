package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileTokenStoreInMemory(t *testing.T) {
	store, err := NewFileTokenStore("")
	require.NoError(t, err)

	assert.Empty(t, store.AccessToken())

	require.NoError(t, store.SetPair("access-1", "refresh-1"))
	assert.Equal(t, "access-1", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestFileTokenStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")

	store, err := NewFileTokenStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetPair("access-1", "refresh-1"))

	// A fresh store loads the persisted pair
	reloaded, err := NewFileTokenStore(path)
	require.NoError(t, err)
	assert.Equal(t, "access-1", reloaded.AccessToken())
	assert.Equal(t, "refresh-1", reloaded.RefreshToken())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	require.NoError(t, reloaded.Clear())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileTokenStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := NewFileTokenStore(path)
	assert.Error(t, err)
}

func TestRemoteTokenSourceRefresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"success":true,"data":{"access_token":"fresh-access","refresh_token":"fresh-refresh","expires_in":3600}}`))
	}))
	defer server.Close()

	store, err := NewFileTokenStore("")
	require.NoError(t, err)
	require.NoError(t, store.SetPair("stale-access", "stale-refresh"))

	source := NewRemoteTokenSource(store, server.URL, 5*time.Second)
	require.NoError(t, source.Refresh(context.Background()))

	assert.Equal(t, "fresh-access", source.AccessToken())
	assert.Equal(t, "fresh-refresh", store.RefreshToken())
}

func TestRemoteTokenSourceKeepsPairOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	store, err := NewFileTokenStore("")
	require.NoError(t, err)
	require.NoError(t, store.SetPair("old-access", "old-refresh"))

	source := NewRemoteTokenSource(store, server.URL, 5*time.Second)
	require.Error(t, source.Refresh(context.Background()))

	// The old pair survives a failed refresh
	assert.Equal(t, "old-access", store.AccessToken())
	assert.Equal(t, "old-refresh", store.RefreshToken())
}

func TestRemoteTokenSourceRequiresRefreshToken(t *testing.T) {
	store, err := NewFileTokenStore("")
	require.NoError(t, err)

	source := NewRemoteTokenSource(store, "http://localhost:1/refresh", time.Second)
	assert.ErrorIs(t, source.Refresh(context.Background()), ErrInvalidToken)
}
