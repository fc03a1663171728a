package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/parthkumar123/backend/internal/config"
)

func newTestJWTService(expiry time.Duration, secret string) JWTService {
	return NewJWTService(&config.Config{
		JWTSecret:   []byte(secret),
		TokenExpiry: expiry,
	})
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestJWTService(time.Hour, "test-secret")
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(-time.Minute, "test-secret")

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
	require.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongKey(t *testing.T) {
	issuer := newTestJWTService(time.Hour, "secret-a")
	verifier := newTestJWTService(time.Hour, "secret-b")

	token, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_Tampered(t *testing.T) {
	svc := newTestJWTService(time.Hour, "test-secret")

	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	// Flip the last signature byte.
	tampered := token[:len(token)-1]
	if token[len(token)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, err = svc.ValidateToken(tampered)
	require.Error(t, err)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestJWTService(time.Hour, "test-secret")

	for _, garbage := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ValidateToken(garbage)
		require.Error(t, err, "input %q", garbage)
	}
}

func TestJWTService_RejectsForeignIssuer(t *testing.T) {
	svc := newTestJWTService(time.Hour, "test-secret")

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": "someone-else",
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := foreign.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	require.Error(t, err)
}
