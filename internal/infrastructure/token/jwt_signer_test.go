package token

import (
	"testing"
	"time"

	config "github.com/devshowcase/api/configs"
	"github.com/devshowcase/api/internal/core/domain/auth"
	"github.com/devshowcase/api/internal/core/domain/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSignParse_RoundTrip(t *testing.T) {
	signer := NewJWTSigner(&config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour})

	userID := uuid.New()
	signed, err := signer.Sign(&auth.Claims{UserID: userID, Email: "dev@example.com", Role: user.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := signer.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "dev@example.com", claims.Email)
	require.Equal(t, user.RoleAdmin, claims.Role)

	// expiry is stamped at signing time
	require.NotNil(t, claims.ExpiresAt)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParse_WrongSecret(t *testing.T) {
	signer := NewJWTSigner(&config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour})
	other := NewJWTSigner(&config.JWTConfig{Secret: "other-secret", AccessTokenTTL: time.Hour})

	signed, err := signer.Sign(&auth.Claims{UserID: uuid.New(), Email: "dev@example.com", Role: user.RoleUser})
	require.NoError(t, err)

	_, err = other.Parse(signed)
	require.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	signer := NewJWTSigner(&config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute})

	signed, err := signer.Sign(&auth.Claims{UserID: uuid.New(), Email: "dev@example.com", Role: user.RoleUser})
	require.NoError(t, err)

	_, err = signer.Parse(signed)
	require.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	signer := NewJWTSigner(&config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour})
	_, err := signer.Parse("not-a-jwt")
	require.Error(t, err)
}
