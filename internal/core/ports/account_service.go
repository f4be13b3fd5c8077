package ports

import (
	"context"

	"github.com/springcrm/crm-api/internal/core/domain"
)

// RegisterInput carries the credentials of a new account.
type RegisterInput struct {
	Email    string
	Password string
}

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

type RegisterService interface {
	Register(ctx context.Context, in RegisterInput) (domain.AccountSummary, error)
}

type LoginService interface {
	Login(ctx context.Context, in LoginInput) (string, error)
}

type ProfileService interface {
	Profile(ctx context.Context, accountID string) (domain.ProfileSummary, error)
}

// AccountAdminService backs the ADMIN-only account routes.
type AccountAdminService interface {
	FindByID(ctx context.Context, id string) (domain.AccountSummary, error)
	FindByEmail(ctx context.Context, email string) (domain.AccountSummary, error)
	FindAll(ctx context.Context, page, size int) ([]domain.AccountSummary, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) error
	SetActive(ctx context.Context, id string, active bool) error
	SetRole(ctx context.Context, id string, role domain.Role) error
}

// ProfileCache is a read-through cache in front of the account store. A miss
// is reported as (zero, false, nil).
type ProfileCache interface {
	Get(ctx context.Context, accountID string) (domain.ProfileSummary, bool, error)
	Set(ctx context.Context, profile domain.ProfileSummary) error
	Invalidate(ctx context.Context, accountID string) error
}
