// Package authz answers allow/deny questions about an authenticated identity.
// A nil identity stands for an anonymous request and is always denied.
package authz

import (
	"fmt"

	"github.com/springcrm/crm-api/internal/core/domain"
)

// RequireRole reports whether the identity holds exactly the given role.
func RequireRole(who *domain.Identity, role domain.Role) bool {
	return who != nil && who.SubjectID != "" && who.Role == role
}

// RequireOwner reports whether the identity is the declared owner of a
// resource.
func RequireOwner(who *domain.Identity, resourceOwnerID string) bool {
	return who != nil && who.SubjectID != "" && resourceOwnerID != "" && who.SubjectID == resourceOwnerID
}

// AuthorizeOwner is RequireOwner as an error, for use inside services.
func AuthorizeOwner(who domain.Identity, resourceOwnerID string) error {
	if !RequireOwner(&who, resourceOwnerID) {
		return fmt.Errorf("owner check: %w", domain.ErrForbidden)
	}
	return nil
}
