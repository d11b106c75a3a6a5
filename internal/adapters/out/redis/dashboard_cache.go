// Package redis caches dashboards in Redis as JSON strings with a TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultKeyPrefix = "icetube:dashboard"

// DashboardCache implements ports.DashboardCache.
type DashboardCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

type Option func(*DashboardCache)

// WithKeyPrefix replaces DefaultKeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(c *DashboardCache) {
		c.prefix = prefix
	}
}

func NewDashboardCache(client *redis.Client, ttl time.Duration, opts ...Option) *DashboardCache {
	c := &DashboardCache{
		client: client,
		prefix: DefaultKeyPrefix,
		ttl:    ttl,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient connects to addr and pings it.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return client, nil
}

func (c *DashboardCache) Key(key string) string {
	return c.prefix + ":" + key
}

func (c *DashboardCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, c.Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err = json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *DashboardCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.client.Set(ctx, c.Key(key), raw, c.ttl).Err()
}

// Invalidate drops every cached dashboard.
func (c *DashboardCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
