package middleware

import "github.com/labstack/echo/v4"

// UserID returns the user id stored by Authenticate.  The boolean is false
// when the request did not pass through Authenticate.
func UserID(c echo.Context) (string, bool) {
	id, ok := c.Get(UserIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
