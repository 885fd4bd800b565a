package auth_test

import (
	"testing"
	"time"

	"go-internmatch-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
)

func newService(expiry time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "unit-test-secret",
		TokenExpiry: expiry,
		TokenIssuer: "internmatch-test",
	})
}

func TestTokenRoundtrip(t *testing.T) {
	svc := newService(time.Hour)

	token, err := svc.GenerateToken(42, 7, "CANDIDATE", "Somchai")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, int64(7), claims.ProfileID)
	assert.Equal(t, "CANDIDATE", claims.Role)
	assert.Equal(t, "Somchai", claims.Name)
}

func TestTokenExpiry(t *testing.T) {
	svc := newService(time.Hour)

	token, err := svc.GenerateTokenWithExpiry(42, 7, "CANDIDATE", "Somchai", -time.Minute)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := newService(time.Hour).GenerateToken(42, 7, "CANDIDATE", "Somchai")
	assert.NoError(t, err)

	other := auth.NewJWTService(auth.JWTConfig{SecretKey: "different-secret", TokenExpiry: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenMissingPrincipal(t *testing.T) {
	svc := newService(time.Hour)

	// A structurally valid token with no role is not a usable principal.
	token, err := svc.GenerateToken(42, 7, "", "Somchai")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := auth.ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Raw tokens without the scheme pass through.
	token, err = auth.ExtractBearerToken("abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = auth.ExtractBearerToken("")
	assert.ErrorIs(t, err, auth.ErrInvalidFormat)
}
