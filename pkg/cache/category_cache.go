package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// CategoryCacheTTL is the time-to-live for cached categories.
	CategoryCacheTTL = time.Hour

	categoryCacheKeyPrefix = "category"
)

// CachedCategory is the denormalized read model stored in Redis as a hash.
type CachedCategory struct {
	ID          string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
}

// CategoryCache provides structured read/write operations for category cache entries.
// Key format: "category:{categoryID}"
type CategoryCache struct {
	client *RedisClient
}

// NewCategoryCache creates a new CategoryCache backed by the given RedisClient.
// A nil client yields a nil cache, which callers treat as disabled.
func NewCategoryCache(r *RedisClient) *CategoryCache {
	if r == nil {
		return nil
	}
	return &CategoryCache{client: r}
}

// Get retrieves a cached category by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *CategoryCache) Get(ctx context.Context, id string) (*CachedCategory, error) {
	vals, err := c.client.Client().HGetAll(ctx, categoryKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}
	return decodeCategory(vals)
}

// Set writes a cached category with CategoryCacheTTL.
// Uses a pipeline so the hash and its TTL are written together.
func (c *CategoryCache) Set(ctx context.Context, cat *CachedCategory) error {
	key := categoryKey(cat.ID)
	pipe := c.client.Client().TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, encodeCategory(cat)...)
	pipe.Expire(ctx, key, CategoryCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached category.
func (c *CategoryCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Client().Del(ctx, categoryKey(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func categoryKey(id string) string {
	return categoryCacheKeyPrefix + ":" + id
}

// encodeCategory flattens cat into HSET field/value pairs. A nil description
// is stored as an absent "description" field.
func encodeCategory(cat *CachedCategory) []any {
	fields := []any{
		"id", cat.ID,
		"name", cat.Name,
		"is_active", strconv.FormatBool(cat.IsActive),
		"created_at", cat.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if cat.Description != nil {
		fields = append(fields, "description", *cat.Description)
	}
	return fields
}

func decodeCategory(vals map[string]string) (*CachedCategory, error) {
	isActive, err := strconv.ParseBool(vals["is_active"])
	if err != nil {
		return nil, fmt.Errorf("cache parse is_active: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	cat := &CachedCategory{
		ID:        vals["id"],
		Name:      vals["name"],
		IsActive:  isActive,
		CreatedAt: createdAt,
	}
	if d, ok := vals["description"]; ok {
		cat.Description = &d
	}
	return cat, nil
}
