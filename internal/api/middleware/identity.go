package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/core/domain"
)

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the authenticated identity.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity established for this request, if any.
func IdentityFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(domain.Identity)
	return id, ok && id.SubjectID != ""
}

// CurrentIdentity is IdentityFrom for an echo.Context. It returns nil for an
// anonymous request.
func CurrentIdentity(c echo.Context) *domain.Identity {
	id, ok := IdentityFrom(c.Request().Context())
	if !ok {
		return nil
	}
	return &id
}
