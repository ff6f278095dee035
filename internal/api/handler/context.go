package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: role must be non-empty
// (presence proves the middleware ran).
func ctxClaims(c echo.Context) (email, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ = c.Get("email").(string)
	return email, role, nil
}
