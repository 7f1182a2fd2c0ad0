package auth

import (
	"testing"
	"time"

	"github.com/rsaisankalp/ashram-assert/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("supersecure")
	require.NoError(t, err)
	assert.Contains(t, hash, ":", "stored value encodes salt and digest")

	assert.True(t, VerifyPassword("supersecure", hash))
	assert.False(t, VerifyPassword("wrongpassword", hash))
}

func TestHashPasswordRejectsShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("supersecure")
	require.NoError(t, err)
	second, err := HashPassword("supersecure")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "fresh salt per hash")
}

func TestVerifyPasswordMalformed(t *testing.T) {
	for _, stored := range []string{"", "nodelimiter", ":", "zz:zz", "abcd:", ":abcd"} {
		assert.False(t, VerifyPassword("supersecure", stored), "stored %q", stored)
	}
}

func TestNewSessionToken(t *testing.T) {
	a, err := NewSessionToken()
	require.NoError(t, err)
	b, err := NewSessionToken()
	require.NoError(t, err)
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestJWTRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	session := &domain.Session{
		Token:    "session-token",
		UserID:   "user-1",
		IssuedAt: time.Now(),
		Roles:    []domain.Role{domain.RoleAdmin},
	}

	token, err := svc.GenerateToken(session)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-token", claims.SessionToken)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, []domain.Role{domain.RoleAdmin}, claims.Roles)
}

func TestJWTExpired(t *testing.T) {
	svc := NewJWTService("test-secret", -time.Minute)
	session := &domain.Session{Token: "s", UserID: "u", IssuedAt: time.Now()}

	token, err := svc.GenerateToken(session)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTWrongSecret(t *testing.T) {
	session := &domain.Session{Token: "s", UserID: "u", IssuedAt: time.Now()}
	token, err := NewJWTService("secret-a", time.Hour).GenerateToken(session)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
