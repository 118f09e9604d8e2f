package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNewJWTValidator_RequiresSecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{})
	assert.Error(t, err)
}

func TestValidateToken_Valid(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret, Issuer: "flow-management-app"})
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-1",
		"email": "user@example.com",
		"iss":   "flow-management-app",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestValidateToken_Expired(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret, Issuer: "flow-management-app"})
	require.NoError(t, err)

	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-1",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err = v.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	_, err = v.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
