package catalog

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a read-through cache for search results and single activities.
// A cache miss or Redis outage is never an error for callers; the source of
// truth stays the places collaborator.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{client: client, ttl: ttl, logger: logger}
}

func searchKey(destination string, filters SearchFilters) string {
	tiers := make([]string, 0, len(filters.PriceTiers))
	for _, t := range filters.PriceTiers {
		tiers = append(tiers, string(t))
	}
	sort.Strings(tiers)
	types := append([]string(nil), filters.Types...)
	sort.Strings(types)

	sum := sha1.Sum([]byte(strings.ToLower(destination) + "|" + strings.Join(tiers, ",") + "|" + strings.Join(types, ",")))
	return "catalog:search:" + hex.EncodeToString(sum[:])
}

func activityKey(placeID string) string {
	return "catalog:activity:" + placeID
}

func (c *Cache) GetSearch(ctx context.Context, destination string, filters SearchFilters) ([]Activity, bool) {
	raw, err := c.client.Get(ctx, searchKey(destination, filters)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var activities []Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, false
	}
	return activities, true
}

func (c *Cache) SetSearch(ctx context.Context, destination string, filters SearchFilters, activities []Activity) {
	raw, err := json.Marshal(activities)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, searchKey(destination, filters), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.Error(err))
	}
}

func (c *Cache) GetActivity(ctx context.Context, placeID string) (Activity, bool) {
	raw, err := c.client.Get(ctx, activityKey(placeID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("catalog cache read failed", zap.Error(err))
		}
		return Activity{}, false
	}

	var a Activity
	if err := json.Unmarshal(raw, &a); err != nil {
		return Activity{}, false
	}
	return a, true
}

func (c *Cache) SetActivity(ctx context.Context, a Activity) {
	raw, err := json.Marshal(a)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, activityKey(a.PlaceID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.Error(err))
	}
}
