package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/credential-verifier/internal/auth"
	"github.com/iliyamo/credential-verifier/internal/auth/authtest"
)

func newServer(corsOrigin string) *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, Deps{
		Verifier:   auth.NewVerifier(authtest.Secret),
		CORSOrigin: corsOrigin,
	})
	return e
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes(t *testing.T) {
	e := newServer("")

	t.Run("health is public", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("me with cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: authtest.Token(t, authtest.Secret, "u1", time.Hour)})

		rec := do(e, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":"u1"}`, rec.Body.String())
	})

	t.Run("me with bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+authtest.Token(t, authtest.Secret, "u2", time.Hour))

		rec := do(e, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"userId":"u2"}`, rec.Body.String())
	})

	t.Run("me without credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic abc123")

		rec := do(e, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Auth failed: No credentials were given"}`, rec.Body.String())
	})

	t.Run("internal ping requires header", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodGet, "/internal/ping", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/internal/ping", nil)
		req.Header.Set("X-Internal-Service", "true")
		rec = do(e, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRoutes_CORS(t *testing.T) {
	e := newServer("https://app.example.com")
	req := httptest.NewRequest(http.MethodOptions, "/v1/me", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)

	rec := do(e, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}
