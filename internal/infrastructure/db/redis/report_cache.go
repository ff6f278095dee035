package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache stores rendered report payloads with a short TTL so dashboard
// polling does not hammer the aggregation pipelines.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a ReportCache wrapping the given Redis client.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get returns the cached payload for key, or found=false on a miss.
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("report cache get: %w", err)
	}
	return val, true, nil
}

// Set stores the payload under key for the given TTL.
func (c *ReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}
