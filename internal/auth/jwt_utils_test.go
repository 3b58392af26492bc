package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 2, 5, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.StaffID)
	assert.Equal(t, 5, claims.RoleID)
}

func TestValidateRejectsWrongSecretAndExpiry(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), 1, 1, time.Hour)
	require.NoError(t, err)
	_, err = ValidateToken([]byte("secret-b"), token)
	assert.Error(t, err)

	expired, err := GenerateToken([]byte("secret-a"), 1, 1, -time.Minute)
	require.NoError(t, err)
	_, err = ValidateToken([]byte("secret-a"), expired)
	assert.Error(t, err)
}
