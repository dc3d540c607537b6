package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/middleware"
)

// ctxEmail extracts the claim email injected by the Auth middleware.
// An empty value means the middleware did not run; reject with 401 rather
// than trusting an unauthenticated request.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.ClaimEmailKey).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
