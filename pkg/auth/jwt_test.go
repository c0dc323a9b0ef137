package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ispanshop/catalog-service/pkg/auth"
)

func TestTokenRoundtrip(t *testing.T) {
	auth.SetSecret("test-secret")

	token, err := auth.GenerateToken(42, "admin", "admin")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	auth.SetSecret("test-secret")
	token, err := auth.GenerateToken(1, "admin", "admin")
	require.NoError(t, err)

	auth.SetSecret("another-secret")
	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	auth.SetSecret("test-secret")

	_, err := auth.ValidateToken("not-a-token")
	assert.Error(t, err)
}
