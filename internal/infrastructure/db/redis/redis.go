// Package redis holds the Redis-backed helpers: the scan deduplicator that
// absorbs double-fired barcode scans and the short-TTL report cache.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

// Config carries the connection settings for the dedup/cache instance. The
// service tolerates Redis being down, so a single DB with no auth is typical.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect opens the client shared by the scan dedup and the report cache and
// verifies it with a ping before the router starts taking scans.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return client, nil
}
