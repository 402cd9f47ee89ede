package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenService_GenerateAndVerify(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 24)

	token, err := svc.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestSessionTokenService_Verify_WrongSecret(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 24)
	other := NewSessionTokenService("other-secret", 24)

	token, err := svc.Generate(42)
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)
}

func TestSessionTokenService_Verify_Garbage(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 24)

	_, err := svc.Verify("not.a.token")
	require.Error(t, err)

	_, err = svc.Verify("")
	require.Error(t, err)
}

func TestSessionTokenService_Verify_Expired(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 24)

	now := time.Now().Add(-48 * time.Hour)
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestSessionTokenService_Verify_RejectsUnsignedToken(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 24)

	claims := &Claims{UserID: 42}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.Error(t, err)
}

func TestSessionTokenService_ExpSeconds(t *testing.T) {
	svc := NewSessionTokenService("test-secret", 24)
	assert.Equal(t, 86400, svc.ExpSeconds())
}
