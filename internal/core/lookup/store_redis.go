// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/gumruk/internal/platform/constants"
)

// RedisCache implements [Cache] with one JSON value per kind.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a cache whose entries expire after ttl.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func cacheKey(kind Kind) string {
	return constants.RedisPrefixLookupList + string(kind)
}

/*
GetList returns the cached first page of a kind.

Returns:
  - *Page: nil on a cache miss
  - error: connectivity or decoding errors
*/
func (cache *RedisCache) GetList(context context.Context, kind Kind) (*Page, error) {
	raw, err := cache.client.Get(context, cacheKey(kind)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis_lookup_get_failed: %w", err)
	}

	page := &Page{}
	if err := json.Unmarshal(raw, page); err != nil {
		return nil, fmt.Errorf("redis_lookup_decode_failed: %w", err)
	}
	return page, nil
}

// SetList stores the page with the configured TTL.
func (cache *RedisCache) SetList(context context.Context, kind Kind, page *Page) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("redis_lookup_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, cacheKey(kind), raw, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_lookup_set_failed: %w", err)
	}
	return nil
}

// Invalidate drops the cached page.
func (cache *RedisCache) Invalidate(context context.Context, kind Kind) error {
	if err := cache.client.Del(context, cacheKey(kind)).Err(); err != nil {
		return fmt.Errorf("redis_lookup_delete_failed: %w", err)
	}
	return nil
}
