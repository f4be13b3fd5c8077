package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

const defaultProfileTTL = 5 * time.Minute

// ProfileCache stores profile summaries in Redis.
// Key format: profile:<account_id>
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	if ttl <= 0 {
		ttl = defaultProfileTTL
	}
	return &ProfileCache{client: client, ttl: ttl}
}

var _ ports.ProfileCache = (*ProfileCache)(nil)

func (c *ProfileCache) Get(ctx context.Context, accountID string) (domain.ProfileSummary, bool, error) {
	raw, err := c.client.Get(ctx, c.key(accountID)).Bytes()
	if errors.Is(err, redis.Nil) {
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

// Set caches the profile, expiring after the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, profile domain.ProfileSummary) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(profile.ID), raw, c.ttl).Err()
}

func (c *ProfileCache) Invalidate(ctx context.Context, accountID string) error {
	return c.client.Del(ctx, c.key(accountID)).Err()
}

func (c *ProfileCache) key(accountID string) string {
	return "profile:" + accountID
}
