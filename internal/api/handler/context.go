package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nlog/notes-system/internal/api/middleware"
)

// ctxIdentity extracts the verified account email injected by the Auth
// middleware. A missing identity means the middleware did not run on this
// route; fail the request rather than proceed unauthenticated.
func ctxIdentity(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.IdentityKey).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return email, nil
}
