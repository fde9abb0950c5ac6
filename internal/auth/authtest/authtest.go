// Package authtest signs access tokens for tests.  The service itself never
// issues tokens; these helpers stand in for the issuing service so tests can
// exercise the verifier with real signatures.
package authtest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/credential-verifier/internal/auth"
)

// Secret is the signing secret shared by tests that do not care about its value.
const Secret = "test-secret-key"

// Sign signs claims with HS256 using secret and fails the test on error.
func Sign(t testing.TB, secret string, claims jwt.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

// Token returns an HS256 token for userID that expires after ttl.  A negative
// ttl yields an already expired token.
func Token(t testing.TB, secret, userID string, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	return Sign(t, secret, &auth.Claims{
		UserID: userID,
		Email:  userID + "@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
}
