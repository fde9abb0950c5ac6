package auth // package auth verifies signed access tokens and exposes their claims

import (
	"errors" // sentinel errors for claim validation

	"github.com/golang-jwt/jwt/v5" // JWT library providing the registered claim set
)

// ErrMissingUserID is returned when a correctly signed token carries no
// userId claim.  Such a token cannot identify anyone and is rejected.
var ErrMissingUserID = errors.New("token has no userId claim")

// Claims is the payload carried by an access token.  UserID is required;
// Email and Nonce are written by the issuing service but are not needed to
// authenticate a request.  The embedded RegisteredClaims supply exp, nbf and
// iat, which the parser checks before Validate is called.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	Nonce  string `json:"nonce,omitempty"`
	jwt.RegisteredClaims
}

// Validate implements jwt.ClaimsValidator.  The parser runs it after the
// standard time checks, so a payload without a user identifier fails
// parsing instead of reaching handlers.
func (c *Claims) Validate() error {
	if c.UserID == "" {
		return ErrMissingUserID
	}
	return nil
}
