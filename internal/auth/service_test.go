package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"election-monitor/internal/mockdata"
	"election-monitor/pkg/config"
	"election-monitor/pkg/logger"
)

func testAuthService(t *testing.T) (*Service, *mockdata.Store) {
	t.Helper()

	hash, err := HashPassword("observer2027")
	require.NoError(t, err)

	store := mockdata.NewEmptyStore()
	store.InsertUser(mockdata.User{
		ID:           "usr_001",
		Name:         "Adaeze Okafor",
		Email:        "admin@electionmonitor.ng",
		Role:         mockdata.RoleAdmin,
		PasswordHash: hash,
	})

	cfg := config.SecurityConfig{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
	log := logger.NewLogger(logger.Options{Level: "error"})

	return NewService(store, cfg, log), store
}

func TestLogin(t *testing.T) {
	svc, _ := testAuthService(t)

	pair, user, err := svc.Login("admin@electionmonitor.ng", "observer2027")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, int64(3600), pair.ExpiresIn)
	assert.Equal(t, "usr_001", user.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := testAuthService(t)

	_, _, err := svc.Login("admin@electionmonitor.ng", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@electionmonitor.ng", "observer2027")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	svc, _ := testAuthService(t)

	pair, _, err := svc.Login("admin@electionmonitor.ng", "observer2027")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "usr_001", claims.UserID)
	assert.Equal(t, mockdata.RoleAdmin, claims.Role)
	assert.Equal(t, "admin@electionmonitor.ng", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	// Bearer prefix is tolerated
	claims, err = svc.ValidateToken("Bearer " + pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "usr_001", claims.UserID)
}

func TestValidateTokenRejectsRefreshToken(t *testing.T) {
	svc, _ := testAuthService(t)

	pair, _, err := svc.Login("admin@electionmonitor.ng", "observer2027")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc, _ := testAuthService(t)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc, store := testAuthService(t)

	other := NewService(store, config.SecurityConfig{
		JWTSecret:       "different-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}, logger.NewLogger(logger.Options{Level: "error"}))

	pair, _, err := other.Login("admin@electionmonitor.ng", "observer2027")
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRotatesPair(t *testing.T) {
	svc, _ := testAuthService(t)

	pair, _, err := svc.Login("admin@electionmonitor.ng", "observer2027")
	require.NoError(t, err)

	rotated, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)

	claims, err := svc.ValidateToken(rotated.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "usr_001", claims.UserID)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _ := testAuthService(t)

	pair, _, err := svc.Login("admin@electionmonitor.ng", "observer2027")
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	// Hashing is salted
	again, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}
