package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

// ProfileService resolves an account id into its profile, through the cache
// when one is configured.
type ProfileService struct {
	repo  ports.AccountRepository
	cache ports.ProfileCache
	log   zerolog.Logger
}

func NewProfileService(repo ports.AccountRepository, cache ports.ProfileCache, log zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, cache: cache, log: log}
}

func (s *ProfileService) Profile(ctx context.Context, accountID string) (domain.ProfileSummary, error) {
	if _, err := uuid.Parse(accountID); err != nil {
		return domain.ProfileSummary{}, fmt.Errorf("profile: %w", domain.ErrAccountNotFound)
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, accountID)
		if err != nil {
			s.log.Warn().Err(err).Str("account_id", accountID).Msg("profile cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	account, err := s.repo.FindByID(ctx, accountID)
	if err != nil {
		return domain.ProfileSummary{}, fmt.Errorf("profile: %w", err)
	}

	profile := account.Profile()
	if s.cache != nil {
		if err := s.cache.Set(ctx, profile); err != nil {
			s.log.Warn().Err(err).Str("account_id", accountID).Msg("profile cache write failed")
		}
	}
	return profile, nil
}
