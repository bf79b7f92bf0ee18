package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medguardian/internal/ports/auth"
)

func fixedVerifier(secret, issuer string, now time.Time) *Verifier {
	v := NewVerifier(secret, issuer)
	v.now = func() time.Time { return now }
	return v
}

func TestVerifier_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	v := fixedVerifier("s3cret", "medguardian", now)

	tok, err := v.Issue(auth.Claims{UserID: "u1", Email: "u1@example.com"}, time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), "  "+tok+"  ")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1@example.com", claims.Email)
}

func TestVerifier_Rejects(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	v := fixedVerifier("s3cret", "medguardian", now)
	ctx := context.Background()

	_, err := v.Verify(ctx, "")
	assert.ErrorIs(t, err, ErrTokenEmpty)

	_, err = v.Verify(ctx, "not-a-jwt")
	assert.Error(t, err)

	// Otro secreto
	other := fixedVerifier("other", "medguardian", now)
	tok, err := other.Issue(auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	// Otro issuer
	foreign := fixedVerifier("s3cret", "someone-else", now)
	tok, err = foreign.Issue(auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(ctx, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)

	// Expirado
	tok, err = v.Issue(auth.Claims{UserID: "u1"}, time.Hour)
	require.NoError(t, err)
	later := fixedVerifier("s3cret", "medguardian", now.Add(2*time.Hour))
	_, err = later.Verify(ctx, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifier_NotConfigured(t *testing.T) {
	var v *Verifier
	_, err := v.Verify(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewVerifier("", "").Issue(auth.Claims{UserID: "u1"}, time.Minute)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewVerifier("k", "").Issue(auth.Claims{}, time.Minute)
	assert.ErrorIs(t, err, auth.ErrMissingOwner)
}

func TestVerifier_RejectsTokenWithoutSubject(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	v := fixedVerifier("s3cret", "", now)

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Email: "nobody@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "   ",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), tok)
	assert.ErrorIs(t, err, auth.ErrMissingOwner)
}
