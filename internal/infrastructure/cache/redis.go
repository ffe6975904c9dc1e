package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/microposts/posts-api/internal/core/ports"
)

// Redis implements ports.PostCache on a Redis instance, for deployments
// running more than one API process against the same store. The listing is
// stored as JSON under posts:<subject> and Redis handles expiry natively.
// Read and store failures degrade to a direct loader call: a cache outage
// must not take the listing endpoint down.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewRedis creates a Redis-backed cache. A non-positive ttl falls back to 5 minutes.
func NewRedis(client *redis.Client, ttl time.Duration, log zerolog.Logger) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, ttl: ttl, log: log}
}

func (r *Redis) GetOrLoad(ctx context.Context, subject string, loader ports.PostLoader) ([]ports.PostItem, bool, error) {
	raw, err := r.client.Get(ctx, r.key(subject)).Bytes()
	if err == nil {
		var items []ports.PostItem
		if jsonErr := json.Unmarshal(raw, &items); jsonErr == nil {
			return items, true, nil
		}
		// Unreadable entry: fall through and overwrite it.
		r.log.Warn().Str("subject", subject).Msg("dropping undecodable cache entry")
	} else if err != redis.Nil {
		r.log.Warn().Err(err).Str("subject", subject).Msg("cache read failed, loading from store")
	}

	items, err := loader(ctx)
	if err != nil {
		return nil, false, err
	}

	raw, err = json.Marshal(items)
	if err == nil {
		if setErr := r.client.Set(ctx, r.key(subject), raw, r.ttl).Err(); setErr != nil {
			r.log.Warn().Err(setErr).Str("subject", subject).Msg("cache store failed")
		}
	}

	return items, false, nil
}

func (r *Redis) Invalidate(ctx context.Context, subject string) error {
	if err := r.client.Del(ctx, r.key(subject)).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (r *Redis) key(subject string) string {
	return "posts:" + subject
}

var _ ports.PostCache = (*Redis)(nil)
