package ports

import (
	"context"

	"github.com/springcrm/crm-api/internal/core/domain"
)

type ClientInput struct {
	Name        string
	Description string
	Email       string
	CPFCNPJ     string
	Phone       string
	Status      domain.ClientStatus
}

type TransactionInput struct {
	Description string
	Amount      float64
	Type        domain.TransactionType
}

// OrganizationService operations act on behalf of the given identity.
type OrganizationService interface {
	Create(ctx context.Context, who domain.Identity, name string) (*domain.Organization, error)
	List(ctx context.Context, who domain.Identity) ([]*domain.Organization, error)
	Rename(ctx context.Context, who domain.Identity, id, name string) (*domain.Organization, error)
	Delete(ctx context.Context, who domain.Identity, id string) error
}

type ClientService interface {
	Create(ctx context.Context, who domain.Identity, orgID string, in ClientInput) (*domain.Client, error)
	List(ctx context.Context, who domain.Identity, orgID string, page Page) ([]*domain.Client, error)
	Update(ctx context.Context, who domain.Identity, orgID, id string, in ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, who domain.Identity, orgID, id string) error
}

type TransactionService interface {
	Create(ctx context.Context, who domain.Identity, orgID string, in TransactionInput) (*domain.Transaction, error)
	List(ctx context.Context, who domain.Identity, orgID string, page Page) ([]*domain.Transaction, error)
	Update(ctx context.Context, who domain.Identity, orgID, id string, in TransactionInput) (*domain.Transaction, error)
	Delete(ctx context.Context, who domain.Identity, orgID, id string) error
}
