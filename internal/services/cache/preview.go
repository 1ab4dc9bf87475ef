// Package cache provides a redis-backed cache of plan previews. The
// preview endpoint is called once per form keystroke; identical requests
// always yield identical results, so cached entries never go stale within
// their TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"credit-plan-engine/internal/models"
)

// PreviewCache stores computed plan previews keyed by a digest of the
// request.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache connects to redis at addr. Entries expire after ttl.
func NewPreviewCache(addr string, ttl time.Duration) *PreviewCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &PreviewCache{client: rdb, ttl: ttl}
}

// Key derives the deterministic cache key for a plan request.
func Key(req *models.PlanRequest) string {
	raw, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return "plan:preview:" + hex.EncodeToString(sum[:])
}

// Get returns the cached preview for key, if present.
func (c *PreviewCache) Get(ctx context.Context, key string) (*models.PlanResult, bool) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return nil, false
	}

	var result models.PlanResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// Set stores a preview under key.
func (c *PreviewCache) Set(ctx context.Context, key string, result *models.PlanResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

// Ping checks redis connectivity.
func (c *PreviewCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the redis connection.
func (c *PreviewCache) Close() error {
	return c.client.Close()
}
