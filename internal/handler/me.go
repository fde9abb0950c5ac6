package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/credential-verifier/internal/middleware"
)

// Me returns the identity attached by middleware.Authenticate.  Reaching it
// without one means the route was registered outside the protected group.
func Me(c echo.Context) error {
	id, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": middleware.MsgInvalidToken})
	}
	return c.JSON(http.StatusOK, echo.Map{"userId": id})
}
