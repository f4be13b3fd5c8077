package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/springcrm/crm-api/internal/api/metrics"
	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

const outcomeSuccess = "success"

// LoginService exchanges credentials for a signed token.
type LoginService struct {
	repo     ports.AccountRepository
	verifier ports.CredentialVerifier
	tokens   ports.TokenIssuer
	audit    ports.AuditSink
	log      zerolog.Logger
}

func NewLoginService(repo ports.AccountRepository, verifier ports.CredentialVerifier, tokens ports.TokenIssuer, audit ports.AuditSink, log zerolog.Logger) *LoginService {
	if audit == nil {
		audit = discardAudit{}
	}
	return &LoginService{repo: repo, verifier: verifier, tokens: tokens, audit: audit, log: log}
}

// Login checks, in order, that the email exists, that the account is active
// and that the password matches. Each check short-circuits, so the password
// of an inactive account is never compared.
//
// The three failures stay distinguishable to the caller, which lets a client
// probe which emails are registered.
func (s *LoginService) Login(ctx context.Context, in ports.LoginInput) (string, error) {
	account, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.record(in.Email, "", "email_not_found")
			return "", fmt.Errorf("login: %w", domain.ErrEmailNotFound)
		}
		return "", fmt.Errorf("login: lookup: %w", err)
	}

	if !account.Active {
		s.record(in.Email, account.ID, "account_not_active")
		return "", fmt.Errorf("login: %w", domain.ErrAccountNotActive)
	}

	if !s.verifier.Verify(in.Password, account.PasswordHash) {
		s.record(in.Email, account.ID, "invalid_credentials")
		return "", fmt.Errorf("login: %w", domain.ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", account.ID).Msg("token issuance failed")
		s.record(in.Email, account.ID, "token_creation_failed")
		return "", fmt.Errorf("login: %w", err)
	}

	s.record(in.Email, account.ID, outcomeSuccess)
	return token, nil
}

func (s *LoginService) record(email, accountID, outcome string) {
	metrics.LoginAttemptsTotal.WithLabelValues(outcome).Inc()
	s.audit.Record(domain.AuthEvent{
		Kind:       domain.AuthEventLogin,
		Email:      email,
		AccountID:  accountID,
		Outcome:    outcome,
		OccurredAt: time.Now().UTC(),
	})
}

type discardAudit struct{}

func (discardAudit) Record(domain.AuthEvent) {}
