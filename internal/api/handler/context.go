package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microposts/posts-api/internal/api/middleware"
	"github.com/microposts/posts-api/internal/core/domain"
)

// ctxPrincipal extracts the Principal injected by the Auth middleware.
// Presence of a non-empty subject proves the middleware ran; a handler
// reached without it is a wiring bug, rejected with 401 rather than served.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || principal.Subject == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
