package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/geopoint/internal/api/middleware"
	"github.com/99minutos/geopoint/internal/core/domain"
)

// ctxPrincipal extracts the caller injected by the Auth middleware and
// fails fast before any service call:
//   - a missing principal means the middleware did not run.
//   - a device principal without device_id cannot report for anyone.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || p.Role == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	if p.Role == domain.RoleDevice && p.DeviceID == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing device identity")
	}
	return p, nil
}
