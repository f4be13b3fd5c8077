package domain

import "errors"

// NotFound
var (
	ErrEmailNotFound        = errors.New("email not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrClientNotFound       = errors.New("client not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

// Conflict
var ErrEmailAlreadyInUse = errors.New("email already in use")

// Forbidden
var (
	ErrAccountNotActive = errors.New("account not active")
	ErrForbidden        = errors.New("access forbidden")
)

// Unauthorized
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")
)

// Bad input
var (
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidRole = errors.New("invalid role")
)

// ErrTokenCreation means the signing key could not produce a token. It points
// at a configuration problem, never at the caller.
var ErrTokenCreation = errors.New("token creation failed")
