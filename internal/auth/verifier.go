package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// hmacMethods lists the only algorithms a token may be signed with.  Tokens
// using "none" or an asymmetric algorithm are rejected by the parser.
var hmacMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// Verifier checks access tokens against a single shared secret.  It holds no
// mutable state and may be shared across goroutines.
type Verifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewVerifier returns a Verifier for tokens signed with secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		parser: jwt.NewParser(jwt.WithValidMethods(hmacMethods), jwt.WithIssuedAt()),
	}
}

// Verify parses raw, checks its signature and time claims, and returns the
// decoded claims.  Any failure (malformed token, wrong signature, expired,
// missing userId) is returned as an error wrapping the jwt sentinel so that
// callers can inspect it with errors.Is.
func (v *Verifier) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tok, err := v.parser.ParseWithClaims(raw, claims, v.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if !tok.Valid {
		return nil, fmt.Errorf("verify token: %w", jwt.ErrTokenUnverifiable)
	}
	return claims, nil
}

func (v *Verifier) keyFunc(t *jwt.Token) (interface{}, error) {
	// Type assert the signing method to HMAC; reject others.
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
	}
	if len(v.secret) == 0 {
		return nil, jwt.ErrInvalidKey
	}
	return v.secret, nil
}
