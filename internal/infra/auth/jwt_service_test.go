package auth

import (
	"testing"
	"time"

	"nudge/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"coach", "admin"}

	token, err := jwtService.GenerateAccessToken(userID, roles, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	otherIssuer, err := NewJWTService(newTestConfig("some_other_secret"))
	require.NoError(t, err)

	expired, err := jwtService.GenerateAccessToken(uuid.New(), nil, -time.Minute)
	require.NoError(t, err)

	foreign, err := otherIssuer.GenerateAccessToken(uuid.New(), nil, time.Minute)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.NewString(),
	}).SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"malformed":   "clearly-not-a-jwt-token-format",
		"expired":     expired,
		"wrong key":   foreign,
		"no expiry":   noExpiry,
		"bad subject": badSubject,
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := jwtService.ValidateToken(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}
