package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bistroboss/restaurant-api/internal/api/metrics"
	"github.com/bistroboss/restaurant-api/internal/core/domain"
)

// Directory resolves a user record by email. Satisfied by the user
// repository.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RequireRole is the authorization stage. It must run after Auth: the claim
// email is looked up in the directory on every invocation, never cached,
// so the stored role is always the one enforced. A promotion is visible on
// the next request, and a stale token cannot keep a revoked role alive.
func RequireRole(dir Directory, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, _ := c.Get(ClaimEmailKey).(string)
			if email == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := dir.FindByEmail(c.Request().Context(), email)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AccessDeniedTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "forbidden")
				}
				return err
			}

			if user.Role != role {
				metrics.AccessDeniedTotal.WithLabelValues("role_mismatch").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			return next(c)
		}
	}
}
