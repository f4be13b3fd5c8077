package ports

import (
	"context"

	"github.com/springcrm/crm-api/internal/core/domain"
)

// Page is a 0-based page request. Size is capped by the service layer.
type Page struct {
	Number int
	Size   int
}

type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	FindByID(ctx context.Context, id string) (*domain.Organization, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
	// Delete removes the organization only when it belongs to ownerID.
	Delete(ctx context.Context, id, ownerID string) error
}

// ClientRepository lookups are always scoped: a client outside the scope is
// reported as domain.ErrClientNotFound.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Find(ctx context.Context, id string, scope domain.OwnerScope) (*domain.Client, error)
	List(ctx context.Context, scope domain.OwnerScope, page Page) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string, scope domain.OwnerScope) error
	// DeleteScope removes every client in scope and reports how many went.
	DeleteScope(ctx context.Context, scope domain.OwnerScope) (int64, error)
}

// TransactionRepository mirrors ClientRepository for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	Find(ctx context.Context, id string, scope domain.OwnerScope) (*domain.Transaction, error)
	List(ctx context.Context, scope domain.OwnerScope, page Page) ([]*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string, scope domain.OwnerScope) error
	DeleteScope(ctx context.Context, scope domain.OwnerScope) (int64, error)
}
