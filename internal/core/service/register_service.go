package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/springcrm/crm-api/internal/api/metrics"
	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

// RegisterService creates USER accounts.
type RegisterService struct {
	repo     ports.AccountRepository
	verifier ports.CredentialVerifier
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewRegisterService(repo ports.AccountRepository, verifier ports.CredentialVerifier, audit ports.AuditSink, log zerolog.Logger) *RegisterService {
	if audit == nil {
		audit = discardAudit{}
	}
	return &RegisterService{repo: repo, verifier: verifier, audit: audit, log: log}
}

// Register creates an active USER account for email.
//
// The existence check and the insert are two separate store calls, so two
// concurrent registrations for the same email can both pass the check. The
// unique email index in the store rejects the second insert, which the
// repository reports as domain.ErrEmailAlreadyInUse as well.
func (s *RegisterService) Register(ctx context.Context, in ports.RegisterInput) (domain.AccountSummary, error) {
	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		s.record(in.Email, "", "email_in_use")
		return domain.AccountSummary{}, fmt.Errorf("register: %w", domain.ErrEmailAlreadyInUse)
	case !errors.Is(err, domain.ErrAccountNotFound):
		return domain.AccountSummary{}, fmt.Errorf("register: lookup: %w", err)
	}

	hash, err := s.verifier.Hash(in.Password)
	if err != nil {
		return domain.AccountSummary{}, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: hash,
		Active:       true,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyInUse) {
			s.record(in.Email, "", "email_in_use")
		}
		return domain.AccountSummary{}, fmt.Errorf("register: %w", err)
	}

	s.record(in.Email, account.ID, outcomeSuccess)
	s.log.Info().Str("account_id", account.ID).Msg("account registered")
	return account.Summary(), nil
}

func (s *RegisterService) record(email, accountID, outcome string) {
	metrics.RegistrationsTotal.WithLabelValues(outcome).Inc()
	s.audit.Record(domain.AuthEvent{
		Kind:       domain.AuthEventRegister,
		Email:      email,
		AccountID:  accountID,
		Outcome:    outcome,
		OccurredAt: time.Now().UTC(),
	})
}
