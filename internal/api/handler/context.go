package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/directoryhq/user-api/internal/core/domain"
)

// ctxIdentity extracts the Identity injected by the Auth middleware.
// Presence proves the guard ran; a request that reaches a protected handler
// without one yields ErrUnauthorized, mapped to 401 by the central handler.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := c.Get("identity").(domain.Identity)
	if !ok {
		return domain.Identity{}, domain.ErrUnauthorized
	}
	return ident, nil
}
