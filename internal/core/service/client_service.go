package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

type ClientService struct {
	orgs    ports.OrganizationRepository
	clients ports.ClientRepository
	log     zerolog.Logger
}

func NewClientService(orgs ports.OrganizationRepository, clients ports.ClientRepository, log zerolog.Logger) *ClientService {
	return &ClientService{orgs: orgs, clients: clients, log: log}
}

func (s *ClientService) Create(ctx context.Context, who domain.Identity, orgID string, in ports.ClientInput) (*domain.Client, error) {
	org, err := ownedOrganization(ctx, s.orgs, who, orgID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	c := &domain.Client{
		ID:             uuid.NewString(),
		OrganizationID: org.ID,
		OwnerID:        who.SubjectID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	applyClientInput(c, in)
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	s.log.Info().Str("client_id", c.ID).Str("organization_id", org.ID).Msg("client created")
	return c, nil
}

func (s *ClientService) List(ctx context.Context, who domain.Identity, orgID string, page ports.Page) ([]*domain.Client, error) {
	org, err := ownedOrganization(ctx, s.orgs, who, orgID)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.List(ctx, scopeOf(who, org), normalizePage(page))
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *ClientService) Update(ctx context.Context, who domain.Identity, orgID, id string, in ports.ClientInput) (*domain.Client, error) {
	org, err := ownedOrganization(ctx, s.orgs, who, orgID)
	if err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	c, err := s.clients.Find(ctx, id, scopeOf(who, org))
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	applyClientInput(c, in)
	c.UpdatedAt = time.Now().UTC()
	if err := s.clients.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, who domain.Identity, orgID, id string) error {
	org, err := ownedOrganization(ctx, s.orgs, who, orgID)
	if err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.clients.Delete(ctx, id, scopeOf(who, org)); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func applyClientInput(c *domain.Client, in ports.ClientInput) {
	c.Name = in.Name
	c.Description = in.Description
	c.Email = in.Email
	c.CPFCNPJ = in.CPFCNPJ
	c.Phone = in.Phone
	c.Status = in.Status
}

func scopeOf(who domain.Identity, org *domain.Organization) domain.OwnerScope {
	return domain.OwnerScope{OwnerID: who.SubjectID, OrganizationID: org.ID}
}
