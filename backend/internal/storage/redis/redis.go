// Package redis stores rendered markdown fragments in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodways/goodways/backend/internal/markdown"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultTTL applies when the configured TTL is zero.
const DefaultTTL = 24 * time.Hour

type RenderCache struct {
	client *goredis.Client
	ttl    time.Duration
}

var _ markdown.Cache = (*RenderCache)(nil)

// New connects to redisURL and verifies the connection.
func New(ctx context.Context, redisURL string, ttl time.Duration) (*RenderCache, error) {
	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := goredis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RenderCache{client: client, ttl: ttl}, nil
}

func (c *RenderCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return val, true, nil
}

func (c *RenderCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// GetMany fetches keys with a single MGET.
func (c *RenderCache) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	hits := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return hits, nil
	}

	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to mget %d keys: %w", len(keys), err)
	}
	for i, v := range vals {
		if s, ok := v.(string); ok {
			hits[keys[i]] = s
		}
	}
	return hits, nil
}

// SetMany writes all entries with the cache TTL in one pipeline.
func (c *RenderCache) SetMany(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := c.client.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for key, value := range entries {
			pipe.Set(ctx, key, value, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set %d keys: %w", len(entries), err)
	}
	return nil
}

func (c *RenderCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RenderCache) Close() error {
	return c.client.Close()
}
