package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileTokenStore persists the access/refresh token pair to disk, standing
// in for the browser's local storage on client-side deployments. A zero
// path keeps the pair in memory only.
type FileTokenStore struct {
	mu   sync.RWMutex
	path string

	access  string
	refresh string
}

// NewFileTokenStore creates a store backed by path, loading any existing
// pair.
func NewFileTokenStore(path string) (*FileTokenStore, error) {
	store := &FileTokenStore{path: path}
	if path == "" {
		return store, nil
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, err
	}

	var persisted struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(raw, &persisted); err != nil {
		return nil, fmt.Errorf("parsing token file %s: %w", path, err)
	}

	store.access = persisted.AccessToken
	store.refresh = persisted.RefreshToken
	return store, nil
}

// AccessToken returns the stored access token
func (f *FileTokenStore) AccessToken() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.access
}

// RefreshToken returns the stored refresh token
func (f *FileTokenStore) RefreshToken() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.refresh
}

// SetPair stores a new token pair and persists it
func (f *FileTokenStore) SetPair(access, refresh string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.access = access
	f.refresh = refresh

	if f.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return err
	}

	raw, err := json.Marshal(map[string]string{
		"access_token":  access,
		"refresh_token": refresh,
	})
	if err != nil {
		return err
	}

	return os.WriteFile(f.path, raw, 0600)
}

// Clear drops the stored pair
func (f *FileTokenStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.access = ""
	f.refresh = ""

	if f.path == "" {
		return nil
	}
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// RemoteTokenSource implements the HTTP client's TokenSource against the
// backend's refresh endpoint. A failed refresh leaves the old pair in
// place so the caller surfaces the unauthorized error.
type RemoteTokenSource struct {
	store      *FileTokenStore
	refreshURL string
	http       *http.Client
}

// NewRemoteTokenSource creates a token source refreshing at refreshURL
func NewRemoteTokenSource(store *FileTokenStore, refreshURL string, timeout time.Duration) *RemoteTokenSource {
	return &RemoteTokenSource{
		store:      store,
		refreshURL: refreshURL,
		http:       &http.Client{Timeout: timeout},
	}
}

// AccessToken returns the current access token
func (r *RemoteTokenSource) AccessToken() string {
	return r.store.AccessToken()
}

// Refresh exchanges the refresh token for a new pair
func (r *RemoteTokenSource) Refresh(ctx context.Context) error {
	refresh := r.store.RefreshToken()
	if refresh == "" {
		return ErrInvalidToken
	}

	body, err := json.Marshal(map[string]string{"refresh_token": refresh})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.refreshURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token refresh failed with status %d", resp.StatusCode)
	}

	var pair struct {
		Data TokenPair `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return err
	}
	if pair.Data.AccessToken == "" {
		return ErrInvalidToken
	}

	return r.store.SetPair(pair.Data.AccessToken, pair.Data.RefreshToken)
}
