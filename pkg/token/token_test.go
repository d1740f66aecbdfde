package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	secret := "test-secret"

	tokenString, err := GenerateJWT(userID, secret, 15)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := ValidateJWT(tokenString, secret)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	tokenString, err := GenerateJWT(uuid.New(), "right-secret", 15)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateJWTExpired(t *testing.T) {
	tokenString, err := GenerateJWT(uuid.New(), "secret", -1)
	require.NoError(t, err)

	_, err = ValidateJWT(tokenString, "secret")
	assert.Error(t, err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("not-a-token", "secret")
	assert.Error(t, err)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	tokenString, err := GenerateRefreshToken(userID, "refresh-secret", 7)
	require.NoError(t, err)

	claims, err := ValidateJWT(tokenString, "refresh-secret")
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.NotEmpty(t, claims.ID)
}
