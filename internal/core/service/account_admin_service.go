package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

// AccountAdminService implements the ADMIN account operations. Role and
// active-flag changes apply from the holder's next login; tokens already
// issued keep the role they were signed with until they expire.
type AccountAdminService struct {
	repo  ports.AccountRepository
	cache ports.ProfileCache
	log   zerolog.Logger
}

func NewAccountAdminService(repo ports.AccountRepository, cache ports.ProfileCache, log zerolog.Logger) *AccountAdminService {
	return &AccountAdminService{repo: repo, cache: cache, log: log}
}

func (s *AccountAdminService) FindByID(ctx context.Context, id string) (domain.AccountSummary, error) {
	if err := validateID(id); err != nil {
		return domain.AccountSummary{}, err
	}
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.AccountSummary{}, fmt.Errorf("find account: %w", err)
	}
	return account.Summary(), nil
}

func (s *AccountAdminService) FindByEmail(ctx context.Context, email string) (domain.AccountSummary, error) {
	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return domain.AccountSummary{}, err
	}
	return account.Summary(), nil
}

func (s *AccountAdminService) FindAll(ctx context.Context, page, size int) ([]domain.AccountSummary, error) {
	p := normalizePage(ports.Page{Number: page, Size: size})
	accounts, err := s.repo.List(ctx, p.Number, p.Size)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	out := make([]domain.AccountSummary, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Summary())
	}
	return out, nil
}

func (s *AccountAdminService) DeleteByID(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return s.delete(ctx, id)
}

func (s *AccountAdminService) DeleteByEmail(ctx context.Context, email string) error {
	account, err := s.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.delete(ctx, account.ID)
}

func (s *AccountAdminService) SetActive(ctx context.Context, id string, active bool) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	s.log.Info().Str("account_id", id).Bool("active", active).Msg("account active flag changed")
	s.invalidate(ctx, id)
	return nil
}

func (s *AccountAdminService) SetRole(ctx context.Context, id string, role domain.Role) error {
	if err := validateID(id); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("set role: %w", domain.ErrInvalidRole)
	}
	if err := s.repo.SetRole(ctx, id, role); err != nil {
		return fmt.Errorf("set role: %w", err)
	}
	s.log.Info().Str("account_id", id).Stringer("role", role).Msg("account role changed")
	s.invalidate(ctx, id)
	return nil
}

func (s *AccountAdminService) findByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("find account: %w", domain.ErrEmailNotFound)
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return account, nil
}

func (s *AccountAdminService) delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	s.log.Info().Str("account_id", id).Msg("account deleted")
	s.invalidate(ctx, id)
	return nil
}

func (s *AccountAdminService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("account_id", id).Msg("profile cache invalidation failed")
	}
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return nil
}
