package domain

import (
	"fmt"
	"regexp"
	"time"
)

// PasswordCharset restricts passwords to letters, digits and @$!%*?&.
var PasswordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)

// Role is the closed set of account roles. It is serialized to a string only
// at the token and storage edges.
type Role int

const (
	RoleUser Role = iota + 1
	RoleAdmin
)

const (
	roleUserName  = "USER"
	roleAdminName = "ADMIN"
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return roleAdminName
	case RoleUser:
		return roleUserName
	default:
		return ""
	}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// ParseRole converts the wire representation of a role back into a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case roleAdminName:
		return RoleAdmin, nil
	case roleUserName:
		return RoleUser, nil
	default:
		return 0, fmt.Errorf("%w: unknown role %q", ErrInvalidRole, s)
	}
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRole, int(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Account is the identity record behind every login.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	Active       bool
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountSummary is the public view of an account.
type AccountSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ProfileSummary is what an authenticated holder sees about themselves.
type ProfileSummary struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Active bool   `json:"active"`
}

func (a *Account) Summary() AccountSummary {
	return AccountSummary{ID: a.ID, Email: a.Email, Role: a.Role}
}

func (a *Account) Profile() ProfileSummary {
	return ProfileSummary{ID: a.ID, Email: a.Email, Role: a.Role, Active: a.Active}
}
