package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/directoryhq/user-api/internal/api/metrics"
	"github.com/directoryhq/user-api/internal/core/domain"
	"github.com/directoryhq/user-api/internal/pkg/token"
)

// identityKey is the echo context key the guard stores the Identity under.
const identityKey = "identity"

// Auth validates the bearer token and injects a typed Identity into the
// request context.
//
// Check order after a successful decode is fixed: the admin claim is
// evaluated before the redundant expiry recheck, so a token that somehow
// passes the codec with a missing expiry reports 403 for non-admins before
// 401 for the expiry. Do not reorder.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := codec.Decode(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					metrics.TokenValidationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if !claims.Admin {
				metrics.TokenValidationsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}

			if claims.ExpiresAt == nil || !time.Now().UTC().Before(claims.ExpiresAt.Time) {
				metrics.TokenValidationsTotal.WithLabelValues("expired").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token expired or not supplied")
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(identityKey, domain.Identity{
				Name:  claims.Subject,
				ID:    claims.UserID,
				Admin: claims.Admin,
			})

			return next(c)
		}
	}
}
