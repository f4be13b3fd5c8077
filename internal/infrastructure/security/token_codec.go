// Package security holds the signing and hashing primitives behind login.
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/thejerf/abtime"

	"github.com/springcrm/crm-api/internal/core/domain"
)

const (
	// DefaultIssuer is the fixed service identifier written to and required
	// from every token.
	DefaultIssuer = "crm-api"
	// DefaultTTL is how long an issued token stays valid.
	DefaultTTL = time.Hour
)

var errEmptySecret = errors.New("security: token signing secret is empty")

// TokenConfig is the immutable signing configuration, built once at startup.
// Zero Issuer and TTL fall back to DefaultIssuer and DefaultTTL.
type TokenConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256-signed identity tokens.
type TokenCodec struct {
	key    []byte
	issuer string
	ttl    time.Duration
	clock  abtime.AbstractTime
	parser *jwt.Parser
}

// NewTokenCodec validates cfg and returns a codec. A nil clock means real time.
func NewTokenCodec(cfg TokenConfig, clock abtime.AbstractTime) (*TokenCodec, error) {
	if cfg.Secret == "" {
		return nil, errEmptySecret
	}
	if cfg.Issuer == "" {
		cfg.Issuer = DefaultIssuer
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if clock == nil {
		clock = abtime.NewRealTime()
	}

	c := &TokenCodec{
		key:    []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		clock:  clock,
	}
	c.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	return c, nil
}

func (c *TokenCodec) now() time.Time {
	return c.clock.Now().UTC()
}

// Issue signs a token for subjectID carrying role as the "role" claim.
func (c *TokenCodec) Issue(subjectID string, role domain.Role) (string, error) {
	if subjectID == "" || !role.Valid() {
		return "", fmt.Errorf("%w: missing subject or role", domain.ErrTokenCreation)
	}

	now := c.now()
	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTokenCreation, err)
	}
	return signed, nil
}

// VerifyAndDecode checks signature, issuer and expiry before any claim is
// read. Every failure wraps domain.ErrTokenInvalid.
func (c *TokenCodec) VerifyAndDecode(token string) (domain.TokenClaims, error) {
	var claims tokenClaims
	parsed, err := c.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	})
	if err != nil {
		return domain.TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.IssuedAt == nil {
		return domain.TokenClaims{}, fmt.Errorf("%w: incomplete claims", domain.ErrTokenInvalid)
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}

	return domain.TokenClaims{
		SubjectID: claims.Subject,
		Role:      role,
		Issuer:    claims.Issuer,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
