package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quicktaste/ordering-api/internal/core/domain"
	"github.com/quicktaste/ordering-api/internal/core/ports"
)

// identityKey is the echo context key under which the caller identity is stored.
const identityKey = "identity"

// Auth validates the bearer token and injects the caller identity into the
// request context. Token errors surface as domain sentinels so the central
// error handler renders them as 401.
func Auth(tokens ports.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			ident, err := tokens.Validate(parts[1])
			if err != nil {
				return err
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// Identity extracts the caller identity injected by Auth. The second return
// is false when the middleware did not run for this route.
func Identity(c echo.Context) (domain.Identity, bool) {
	ident, ok := c.Get(identityKey).(domain.Identity)
	return ident, ok
}
