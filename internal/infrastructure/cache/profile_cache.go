// Package cache holds the in-process profile cache used when no Redis
// address is configured.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

const defaultTTL = 5 * time.Minute

// MemoryProfileCache is a bigcache-backed ports.ProfileCache. Entries are
// evicted once they outlive the configured TTL.
type MemoryProfileCache struct {
	store *bigcache.BigCache
}

var _ ports.ProfileCache = (*MemoryProfileCache)(nil)

func NewMemoryProfileCache(ctx context.Context, ttl time.Duration) (*MemoryProfileCache, error) {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	cfg := bigcache.DefaultConfig(ttl)
	cfg.CleanWindow = ttl / 2
	cfg.Verbose = false

	store, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init profile cache: %w", err)
	}
	return &MemoryProfileCache{store: store}, nil
}

func (c *MemoryProfileCache) Get(_ context.Context, accountID string) (domain.ProfileSummary, bool, error) {
	raw, err := c.store.Get(accountID)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return domain.ProfileSummary{}, false, nil
	}
	if err != nil {
		return domain.ProfileSummary{}, false, fmt.Errorf("profile cache get: %w", err)
	}

	var p domain.ProfileSummary
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.ProfileSummary{}, false, fmt.Errorf("profile cache decode: %w", err)
	}
	return p, true, nil
}

func (c *MemoryProfileCache) Set(_ context.Context, profile domain.ProfileSummary) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	return c.store.Set(profile.ID, raw)
}

func (c *MemoryProfileCache) Invalidate(_ context.Context, accountID string) error {
	err := c.store.Delete(accountID)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (c *MemoryProfileCache) Close() error {
	return c.store.Close()
}
