package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_Roundtrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue("alice", "staff")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "staff", claims.Role)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_ExpiredToken(t *testing.T) {
	secret := "test-secret"
	svc := NewJWTService(secret)

	// Sign a token that expired an hour ago with the same secret.
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Username: "alice",
		Role:     "staff",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	require.Error(t, err)
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestVerify_TamperedSignature(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue("alice", "staff")
	require.NoError(t, err)

	// Flip the last byte of the signature.
	tampered := []byte(token)
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	require.Error(t, err)
	assert.False(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-one").Issue("alice", "staff")
	require.NoError(t, err)

	_, err = NewJWTService("secret-two").Verify(token)
	assert.Error(t, err)
}

func TestVerify_RejectsNonHMACAlgorithm(t *testing.T) {
	svc := NewJWTService("test-secret")

	// alg=none tokens must never verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Username: "alice", Role: "admin"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(raw)
	assert.Error(t, err)
}
