package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/directoryhq/user-api/internal/core/domain"
)

// RequireAdmin gates a route group on the admin flag of the resolved
// Identity. It runs after Auth; a missing Identity means the guard never
// ran and the request is rejected with ErrUnauthorized, which the central
// error handler maps to 401.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := c.Get(identityKey).(domain.Identity)
			if !ok {
				return domain.ErrUnauthorized
			}
			if !ident.Admin {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}
