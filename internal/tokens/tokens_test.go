package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shopapi/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	secret := []byte("test_secret")
	user := &models.User{
		ID:    42,
		Email: "user@example.com",
		Role:  "user",
	}

	token, err := Issue(secret, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ClaimsFromToken(token, secret)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "user@example.com", claims.Email)
	require.Equal(t, "user", claims.Role)
	require.Nil(t, claims.ExpiresAt)
}

func TestParseWrongSecret(t *testing.T) {
	token, err := Issue([]byte("secret_one"), &models.User{ID: 1, Email: "a@b.c", Role: "user"})
	require.NoError(t, err)

	_, err = ClaimsFromToken(token, []byte("secret_two"))
	require.Error(t, err)
}
