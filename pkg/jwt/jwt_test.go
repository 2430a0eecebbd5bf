package jwt

import (
	"testing"
	"time"

	"salon-booking-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")

	token, tokenID, err := svc.GenerateAccessToken(42, "admin@salon.test", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "admin@salon.test", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenCarriesRefreshType(t *testing.T) {
	svc := newTestService("test-secret")

	token, _, err := svc.GenerateRefreshToken(42, "admin@salon.test", "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService("test-secret")

	_, first, err := svc.GenerateAccessToken(42, "admin@salon.test", "admin")
	require.NoError(t, err)
	_, second, err := svc.GenerateAccessToken(42, "admin@salon.test", "admin")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService("test-secret")
	other := newTestService("other-secret")

	token, _, err := svc.GenerateAccessToken(42, "admin@salon.test", "admin")
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: -time.Minute,
	})

	token, _, err := svc.GenerateAccessToken(42, "admin@salon.test", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService("test-secret")

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
