package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/credential-verifier/internal/auth" // typed claims returned by the verifier
)

// Response messages for the two rejection paths.  Clients match on these
// literals, so they must not change.
const (
	MsgNoCredentials = "Auth failed: No credentials were given"
	MsgInvalidToken  = "Auth failed: Invalid token"
)

const (
	// DefaultCookieName is the cookie browsers receive from the login flow.
	DefaultCookieName = "accessToken"
	// UserIDKey is the Echo context key holding the authenticated user id.
	UserIDKey = "userId"

	bearerPrefix = "Bearer "
)

// TokenVerifier verifies a raw credential and returns its claims.
// *auth.Verifier satisfies it.
type TokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

type authOptions struct {
	cookieName string
	sink       Sink
}

// Option customises Authenticate.
type Option func(*authOptions)

// WithCookieName changes the cookie the credential is read from.  An empty
// name keeps the default.
func WithCookieName(name string) Option {
	return func(o *authOptions) {
		if name != "" {
			o.cookieName = name
		}
	}
}

// WithSink sets the diagnostic sink.  A nil sink keeps the no-op default.
func WithSink(s Sink) Option {
	return func(o *authOptions) {
		if s != nil {
			o.sink = s
		}
	}
}

// Authenticate returns an Echo middleware that requires a verified access
// token.  The token is read from the accessToken cookie first and from an
// "Authorization: Bearer <token>" header second.  On success the token's
// userId claim is stored in the context under UserIDKey and the next handler
// runs; otherwise the request is answered with 401 and a JSON message, and
// the context is left untouched.
func Authenticate(v TokenVerifier, opts ...Option) echo.MiddlewareFunc {
	o := authOptions{cookieName: DefaultCookieName, sink: NopSink{}}
	for _, opt := range opts {
		opt(&o)
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path

			raw, source := extractToken(c, o.cookieName)
			if raw == "" {
				o.sink.Record(Event{Decision: DecisionTokenMissing, Path: path})
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": MsgNoCredentials})
			}
			o.sink.Record(Event{Decision: DecisionTokenFound, Source: source, Path: path})

			// Every verification failure, including a misconfigured secret,
			// produces the same response.
			claims, err := v.Verify(raw)
			if err != nil {
				o.sink.Record(Event{Decision: DecisionTokenInvalid, Source: source, Path: path, Err: err})
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": MsgInvalidToken})
			}
			if claims == nil || claims.UserID == "" {
				o.sink.Record(Event{Decision: DecisionTokenInvalid, Source: source, Path: path, Err: auth.ErrMissingUserID})
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": MsgInvalidToken})
			}

			o.sink.Record(Event{Decision: DecisionTokenValid, Source: source, Path: path, UserID: claims.UserID})
			c.Set(UserIDKey, claims.UserID)
			return next(c)
		}
	}
}

// extractToken returns the raw credential and where it came from.  An empty
// cookie counts as absent.  A header that does not start with "Bearer " is
// ignored.
func extractToken(c echo.Context, cookieName string) (string, string) {
	if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
		return ck.Value, SourceCookie
	}
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(h, bearerPrefix) {
		return strings.TrimPrefix(h, bearerPrefix), SourceHeader
	}
	return "", ""
}
