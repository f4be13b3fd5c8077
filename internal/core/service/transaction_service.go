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

type TransactionService struct {
	orgs ports.OrganizationRepository
	txs  ports.TransactionRepository
	log  zerolog.Logger
}

func NewTransactionService(orgs ports.OrganizationRepository, txs ports.TransactionRepository, log zerolog.Logger) *TransactionService {
	return &TransactionService{orgs: orgs, txs: txs, log: log}
}

func (s *TransactionService) Create(ctx context.Context, who domain.Identity, orgID string, in ports.TransactionInput) (*domain.Transaction, error) {
	org, err := ownedOrganization(ctx, s.orgs, who, orgID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	tx := &domain.Transaction{
		ID:             uuid.NewString(),
		OrganizationID: org.ID,
		OwnerID:        who.SubjectID,
		Description:    in.Description,
		Amount:         in.Amount,
		Type:           in.Type,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.txs.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	s.log.Info().Str("transaction_id", tx.ID).Str("organization_id", org.ID).Str("type", string(tx.Type)).Msg("transaction created")
	return tx, nil
}

func (s *TransactionService) List(ctx context.Context, who domain.Identity, orgID string, page ports.Page) ([]*domain.Transaction, error) {
	org, err := ownedOrganization(ctx, s.orgs, who, orgID)
	if err != nil {
		return nil, err
	}
	txs, err := s.txs.List(ctx, scopeOf(who, org), normalizePage(page))
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

func (s *TransactionService) Update(ctx context.Context, who domain.Identity, orgID, id string, in ports.TransactionInput) (*domain.Transaction, error) {
	org, err := ownedOrganization(ctx, s.orgs, who, orgID)
	if err != nil {
		return nil, err
	}
	if err := validateID(id); err != nil {
		return nil, err
	}
	tx, err := s.txs.Find(ctx, id, scopeOf(who, org))
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	tx.Description = in.Description
	tx.Amount = in.Amount
	tx.Type = in.Type
	tx.UpdatedAt = time.Now().UTC()
	if err := s.txs.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, who domain.Identity, orgID, id string) error {
	org, err := ownedOrganization(ctx, s.orgs, who, orgID)
	if err != nil {
		return err
	}
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.txs.Delete(ctx, id, scopeOf(who, org)); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
