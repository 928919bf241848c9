package jwt

import (
	"testing"
	"time"

	jwtLib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("alice@example.com", 5)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims["email"])
	assert.Equal(t, float64(5), claims["user_id"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	expiresIn := time.Until(time.Unix(int64(exp), 0))
	assert.InDelta(t, TokenExpiry.Seconds(), expiresIn.Seconds(), 60)
}

func TestValidateToken_Malformed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("alice@example.com", 5)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := jwtLib.MapClaims{
		"email":   "alice@example.com",
		"user_id": uint(5),
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"iat":     time.Now().Add(-25 * time.Hour).Unix(),
	}
	expired, err := jwtLib.NewWithClaims(jwtLib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(expired)
	assert.Error(t, err)
}
