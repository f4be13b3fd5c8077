package ports

import (
	"context"

	"github.com/springcrm/crm-api/internal/core/domain"
)

// AccountRepository is the record store for accounts. Lookups that miss
// return domain.ErrAccountNotFound; Create returns domain.ErrEmailAlreadyInUse
// when the store's unique email index rejects the insert.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context, page, size int) ([]*domain.Account, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetRole(ctx context.Context, id string, role domain.Role) error
	Delete(ctx context.Context, id string) error
}
