package domain

import "time"

// Identity is the authenticated caller of a single request, rebuilt from a
// verified token each time. It is never persisted.
type Identity struct {
	SubjectID string
	Role      Role
}

// TokenClaims is the decoded content of a verified token.
type TokenClaims struct {
	SubjectID string
	Role      Role
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (c TokenClaims) Identity() Identity {
	return Identity{SubjectID: c.SubjectID, Role: c.Role}
}
