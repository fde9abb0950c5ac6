package router // package router defines how HTTP routes are registered for the API

import (
	"net/http" // HTTP method names for CORS

	"github.com/labstack/echo/v4"                   // import the Echo web framework to handle routing
	echomw "github.com/labstack/echo/v4/middleware" // Echo's bundled middleware (CORS, recover)

	"github.com/iliyamo/credential-verifier/internal/handler"    // import the handlers exposed by the service
	"github.com/iliyamo/credential-verifier/internal/middleware" // import middleware for credential verification
)

// Deps bundles what the protected routes need.  Verifier is required; the
// remaining fields fall back to the middleware defaults when empty.
type Deps struct {
	Verifier   middleware.TokenVerifier
	Sink       middleware.Sink
	CookieName string
	CORSOrigin string // browser origin allowed to send the access token cookie
}

// RegisterRoutes registers every route on e.  /healthz is public, /v1
// requires a verified access token and /internal only admits calls from
// sibling services.
func RegisterRoutes(e *echo.Echo, d Deps) {
	e.Use(echomw.Recover())
	// Browsers only send the accessToken cookie cross-origin when the
	// server allows credentials for an explicit origin.
	if d.CORSOrigin != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{d.CORSOrigin},
			AllowCredentials: true,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		}))
	}

	// Map the GET request at path "/healthz" to the Health handler.
	e.GET("/healthz", handler.Health)

	// Protected endpoints live under /v1.
	v1 := e.Group("/v1")
	v1.Use(middleware.Authenticate(d.Verifier,
		middleware.WithCookieName(d.CookieName),
		middleware.WithSink(d.Sink),
	))
	v1.GET("/me", handler.Me)

	internal := e.Group("/internal")
	internal.Use(middleware.InternalService())
	internal.GET("/ping", handler.InternalPing)
}
