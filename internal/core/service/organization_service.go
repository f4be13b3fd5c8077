package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/springcrm/crm-api/internal/core/authz"
	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

type OrganizationService struct {
	repo    ports.OrganizationRepository
	clients ports.ClientRepository
	txs     ports.TransactionRepository
	log     zerolog.Logger
}

func NewOrganizationService(repo ports.OrganizationRepository, clients ports.ClientRepository, txs ports.TransactionRepository, log zerolog.Logger) *OrganizationService {
	return &OrganizationService{repo: repo, clients: clients, txs: txs, log: log}
}

func (s *OrganizationService) Create(ctx context.Context, who domain.Identity, name string) (*domain.Organization, error) {
	if who.SubjectID == "" {
		return nil, domain.ErrUnauthenticated
	}
	now := time.Now().UTC()
	org := &domain.Organization{
		ID:        uuid.NewString(),
		OwnerID:   who.SubjectID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, org); err != nil {
		s.log.Error().Err(err).Msg("failed to create organization")
		return nil, fmt.Errorf("create organization: %w", err)
	}
	s.log.Info().Str("organization_id", org.ID).Str("owner_id", org.OwnerID).Msg("organization created")
	return org, nil
}

// List only ever returns the caller's own organizations.
func (s *OrganizationService) List(ctx context.Context, who domain.Identity) ([]*domain.Organization, error) {
	if who.SubjectID == "" {
		return nil, domain.ErrUnauthenticated
	}
	orgs, err := s.repo.ListByOwner(ctx, who.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	return orgs, nil
}

func (s *OrganizationService) Rename(ctx context.Context, who domain.Identity, id, name string) (*domain.Organization, error) {
	org, err := ownedOrganization(ctx, s.repo, who, id)
	if err != nil {
		return nil, err
	}
	org.Name = name
	org.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, org); err != nil {
		return nil, fmt.Errorf("rename organization: %w", err)
	}
	return org, nil
}

// Delete removes the organization together with its clients and
// transactions. Children go first so a failed run leaves the organization in
// place and can be retried.
func (s *OrganizationService) Delete(ctx context.Context, who domain.Identity, id string) error {
	org, err := ownedOrganization(ctx, s.repo, who, id)
	if err != nil {
		return err
	}
	scope := domain.OwnerScope{OwnerID: org.OwnerID, OrganizationID: org.ID}
	clients, err := s.clients.DeleteScope(ctx, scope)
	if err != nil {
		return fmt.Errorf("delete organization clients: %w", err)
	}
	txs, err := s.txs.DeleteScope(ctx, scope)
	if err != nil {
		return fmt.Errorf("delete organization transactions: %w", err)
	}
	if err := s.repo.Delete(ctx, org.ID, who.SubjectID); err != nil {
		return fmt.Errorf("delete organization: %w", err)
	}
	s.log.Info().
		Str("organization_id", org.ID).
		Int64("clients", clients).
		Int64("transactions", txs).
		Msg("organization deleted")
	return nil
}

// ownedOrganization loads an organization and checks that who owns it. A
// missing organization is NotFound; someone else's is Forbidden.
func ownedOrganization(ctx context.Context, repo ports.OrganizationRepository, who domain.Identity, id string) (*domain.Organization, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	org, err := repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("organization %s: %w", id, err)
	}
	if err := authz.AuthorizeOwner(who, org.OwnerID); err != nil {
		return nil, fmt.Errorf("organization %s: %w", id, err)
	}
	return org, nil
}
