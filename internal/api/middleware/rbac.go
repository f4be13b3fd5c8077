package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/api/metrics"
	"github.com/springcrm/crm-api/internal/core/authz"
	"github.com/springcrm/crm-api/internal/core/domain"
)

// RequireAuthenticated rejects anonymous requests with 401.
func RequireAuthenticated() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentIdentity(c) == nil {
				metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}

// RequireRole rejects anonymous requests with 401 and requests whose
// identity lacks role with 403.
func RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			who := CurrentIdentity(c)
			if who == nil {
				metrics.AccessDeniedTotal.WithLabelValues("unauthenticated").Inc()
				return domain.ErrUnauthenticated
			}
			if !authz.RequireRole(who, role) {
				metrics.AccessDeniedTotal.WithLabelValues("role").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
