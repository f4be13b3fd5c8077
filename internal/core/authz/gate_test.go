package authz

import (
	"errors"
	"testing"

	"github.com/springcrm/crm-api/internal/core/domain"
)

func TestRequireRole(t *testing.T) {
	admin := &domain.Identity{SubjectID: "a-1", Role: domain.RoleAdmin}
	user := &domain.Identity{SubjectID: "u-1", Role: domain.RoleUser}

	cases := []struct {
		name string
		who  *domain.Identity
		role domain.Role
		want bool
	}{
		{"admin on admin route", admin, domain.RoleAdmin, true},
		{"user on admin route", user, domain.RoleAdmin, false},
		{"user on user route", user, domain.RoleUser, true},
		{"anonymous", nil, domain.RoleUser, false},
		{"empty subject", &domain.Identity{Role: domain.RoleAdmin}, domain.RoleAdmin, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RequireRole(tc.who, tc.role); got != tc.want {
				t.Fatalf("RequireRole = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRequireOwner(t *testing.T) {
	who := &domain.Identity{SubjectID: "owner-1", Role: domain.RoleUser}

	if !RequireOwner(who, "owner-1") {
		t.Fatalf("owner should be allowed")
	}
	if RequireOwner(who, "owner-2") {
		t.Fatalf("non-owner should be denied")
	}
	if RequireOwner(nil, "owner-1") {
		t.Fatalf("anonymous should be denied")
	}
	if RequireOwner(&domain.Identity{}, "") {
		t.Fatalf("empty subject must not match empty owner")
	}
	// Admins get no implicit ownership.
	if RequireOwner(&domain.Identity{SubjectID: "admin-1", Role: domain.RoleAdmin}, "owner-1") {
		t.Fatalf("admin should not own foreign resources")
	}
}

func TestAuthorizeOwner(t *testing.T) {
	err := AuthorizeOwner(domain.Identity{SubjectID: "a"}, "b")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := AuthorizeOwner(domain.Identity{SubjectID: "a"}, "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
