package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

const (
	catalogListKey = "sweets:list"
	catalogListTTL = 30 * time.Second
)

// CatalogCache caches the full catalog listing under a single key with a
// short TTL. Every write to the catalog invalidates it; the TTL bounds
// staleness if an invalidation is ever lost.
type CatalogCache struct {
	client *redis.Client
}

// NewCatalogCache creates a CatalogCache wrapping the given Redis client.
func NewCatalogCache(client *redis.Client) *CatalogCache {
	return &CatalogCache{client: client}
}

// GetList returns the cached listing, or (nil, nil) on a miss.
func (c *CatalogCache) GetList(ctx context.Context) ([]*domain.Sweet, error) {
	raw, err := c.client.Get(ctx, catalogListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var sweets []*domain.Sweet
	if err := json.Unmarshal(raw, &sweets); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return sweets, nil
}

// SetList stores the listing with the cache TTL.
func (c *CatalogCache) SetList(ctx context.Context, sweets []*domain.Sweet) error {
	raw, err := json.Marshal(sweets)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, catalogListKey, raw, catalogListTTL).Err()
}

// Invalidate drops the cached listing.
func (c *CatalogCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, catalogListKey).Err()
}
