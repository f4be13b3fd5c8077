package ports

import "github.com/springcrm/crm-api/internal/core/domain"

// CredentialVerifier wraps a one-way password hash. Verify never fails on a
// malformed hash; it reports false instead.
type CredentialVerifier interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// TokenIssuer signs identity tokens.
type TokenIssuer interface {
	Issue(subjectID string, role domain.Role) (string, error)
}

// TokenVerifier checks and decodes identity tokens. Any failure is reported
// as domain.ErrTokenInvalid and no claim is returned.
type TokenVerifier interface {
	VerifyAndDecode(token string) (domain.TokenClaims, error)
}
