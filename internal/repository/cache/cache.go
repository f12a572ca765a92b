// Package cache provides an optional short-TTL facet cache.
//
// Facet computation re-runs every strategy against the backing store;
// the cache shortcuts identical query/tenant/type combinations. All
// failures are soft: a cache error means a recompute, never a search
// failure.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

const keyPrefix = "searchapi:facets:"

// Cache stores serialized facet lists in Redis with a TTL.
type Cache struct {
	client rueidis.Client
	ttl    time.Duration
}

// Config holds connection parameters for the facet cache.
type Config struct {
	Addrs    []string
	Password string
	TTL      time.Duration
}

// New creates a facet cache.
func New(cfg Config) (*Cache, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Password:     cfg.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Cache{client: client, ttl: cfg.TTL}, nil
}

// Key derives a stable cache key from the facet computation inputs.
func Key(query, tenantID string, types []string) string {
	h := sha256.New()
	h.Write([]byte(query))
	h.Write([]byte{0})
	h.Write([]byte(tenantID))
	for _, t := range types {
		h.Write([]byte{0})
		h.Write([]byte(t))
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached value for key, reporting whether it was found.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := c.client.B().Get().Key(key).Build()
	data, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}
	return data, true, nil
}

// Set stores value at key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	cmd := c.client.B().Set().Key(key).Value(string(value)).Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	cmd := c.client.B().Ping().Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (c *Cache) Close() {
	c.client.Close()
}
