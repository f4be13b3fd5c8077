package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/api/metrics"
	"github.com/springcrm/crm-api/internal/core/ports"
	"github.com/springcrm/crm-api/pkg/logger"
)

// Authenticate verifies the bearer token, when there is one, and stores the
// resulting identity in the request context. It never rejects: a missing,
// malformed or invalid token leaves the request anonymous, and the route
// guards decide what anonymous callers may reach.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				metrics.TokenVerificationsTotal.WithLabelValues("absent").Inc()
				return next(c)
			}

			claims, err := verifier.VerifyAndDecode(token)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				l := logger.FromContext(c.Request().Context())
				l.Debug().Err(err).Msg("bearer token rejected, continuing anonymous")
				return next(c)
			}

			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			who := claims.Identity()
			ctx := WithIdentity(c.Request().Context(), who)
			scoped := logger.FromContext(ctx).With().Str("subject_id", who.SubjectID).Logger()
			c.SetRequest(c.Request().WithContext(logger.WithContext(ctx, scoped)))
			return next(c)
		}
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
