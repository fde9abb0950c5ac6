package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderInternalService marks calls made by sibling services.
const HeaderInternalService = "X-Internal-Service"

// MsgInternalOnly is the rejection message for internal-only endpoints.
const MsgInternalOnly = "Unauthorized: Internal service only endpoint"

// InternalService returns a middleware that admits only requests carrying
// "X-Internal-Service: true".  The header is a routing convention between
// services behind the same gateway, not an authentication mechanism.
func InternalService() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(HeaderInternalService) != "true" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": MsgInternalOnly})
			}
			return next(c)
		}
	}
}
