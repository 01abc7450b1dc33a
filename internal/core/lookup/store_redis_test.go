// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package lookup_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/core/lookup"
)

/*
TestRedisCache covers a miss, a hit, invalidation and expiry.
*/
func TestRedisCache(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := lookup.NewRedisCache(client, time.Minute)
	ctx := context.Background()

	page, err := cache.GetList(ctx, lookup.KindUnit)
	require.NoError(t, err)
	assert.Nil(t, page)

	stored := &lookup.Page{Items: []*lookup.Lookup{{ID: 1, Name: "kg"}}, Total: 1}
	require.NoError(t, cache.SetList(ctx, lookup.KindUnit, stored))
	assert.Equal(t, time.Minute, server.TTL("lookup:list:units"))

	page, err = cache.GetList(ctx, lookup.KindUnit)
	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "kg", page.Items[0].Name)
	assert.Equal(t, 1, page.Total)

	// Other kinds are untouched
	page, err = cache.GetList(ctx, lookup.KindWorkgroup)
	require.NoError(t, err)
	assert.Nil(t, page)

	require.NoError(t, cache.Invalidate(ctx, lookup.KindUnit))
	page, err = cache.GetList(ctx, lookup.KindUnit)
	require.NoError(t, err)
	assert.Nil(t, page)

	require.NoError(t, cache.SetList(ctx, lookup.KindUnit, stored))
	server.FastForward(2 * time.Minute)
	page, err = cache.GetList(ctx, lookup.KindUnit)
	require.NoError(t, err)
	assert.Nil(t, page)
}

/*
TestRedisCache_Corrupt reports undecodable entries instead of serving them.
*/
func TestRedisCache_Corrupt(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, server.Set("lookup:list:units", "{not json"))

	_, err := lookup.NewRedisCache(client, time.Minute).GetList(context.Background(), lookup.KindUnit)
	assert.ErrorContains(t, err, "redis_lookup_decode_failed")
}
