package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quicktaste/ordering-api/internal/api/middleware"
	"github.com/quicktaste/ordering-api/internal/core/domain"
)

// callerIdentity extracts the identity injected by the Auth middleware and
// fast-fails with 401 when the route was reached without one.
func callerIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := middleware.Identity(c)
	if !ok || ident.Subject == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}
