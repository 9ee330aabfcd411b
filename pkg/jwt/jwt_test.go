package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "estateline-api", 24)

	token, err := tm.GenerateToken("uuid-1", "owner@estateline.in", "Site Owner", "owner")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tm.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "uuid-1", claims.AdminUUID)
	assert.Equal(t, "owner@estateline.in", claims.Email)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, "estateline-api", claims.Issuer)
	assert.Equal(t, "uuid-1", claims.Subject)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", "estateline-api", 24)
	other := NewTokenManager("other-secret", "estateline-api", 24)

	token, err := tm.GenerateToken("uuid-1", "owner@estateline.in", "Site Owner", "owner")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Expired(t *testing.T) {
	// Zero TTL issues an already-expired token
	tm := NewTokenManager("test-secret", "estateline-api", 0)

	token, err := tm.GenerateToken("uuid-1", "owner@estateline.in", "Site Owner", "owner")
	assert.NoError(t, err)

	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", "estateline-api", 24)

	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTimingSafeCompare(t *testing.T) {
	assert.True(t, TimingSafeCompare("abc", "abc"))
	assert.False(t, TimingSafeCompare("abc", "abd"))
	assert.False(t, TimingSafeCompare("abc", "abcd"))
}
