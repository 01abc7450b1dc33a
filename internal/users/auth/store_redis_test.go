// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/users/auth"
)

func newSessionStore(t *testing.T) (*auth.RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return auth.NewSessionStore(client), server
}

func session(id, userID, hash string) *auth.Session {
	return &auth.Session{
		ID:        id,
		UserID:    userID,
		TokenHash: hash,
		UserAgent: "firefox",
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
}

/*
TestRedisSessionStore_Lifecycle stores, finds and revokes a session.
*/
func TestRedisSessionStore_Lifecycle(t *testing.T) {
	store, server := newSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, session("s-1", "u-1", "hash-1")))

	found, err := store.FindByTokenHash(ctx, "hash-1")
	require.NoError(t, err)
	assert.Equal(t, "s-1", found.ID)
	assert.Equal(t, "u-1", found.UserID)
	assert.Equal(t, "hash-1", found.TokenHash)
	assert.Equal(t, "firefox", found.UserAgent)

	ttl := server.TTL("auth:session:hash-1")
	assert.True(t, ttl > 59*time.Minute && ttl <= time.Hour, "ttl %s", ttl)

	require.NoError(t, store.Revoke(ctx, found))

	_, err = store.FindByTokenHash(ctx, "hash-1")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.False(t, server.Exists("auth:session:hash-1"))
}

/*
TestRedisSessionStore_Expiry drops sessions once their TTL passes.
*/
func TestRedisSessionStore_Expiry(t *testing.T) {
	store, server := newSessionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, session("s-1", "u-1", "hash-1")))
	server.FastForward(2 * time.Hour)

	_, err := store.FindByTokenHash(ctx, "hash-1")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	expired := session("s-2", "u-1", "hash-2")
	expired.ExpiresAt = time.Now().Add(-time.Second)
	assert.Error(t, store.Create(ctx, expired))
}

/*
TestRedisSessionStore_RevokeOthers keeps only the named session of one user.
*/
func TestRedisSessionStore_RevokeOthers(t *testing.T) {
	store, _ := newSessionStore(t)
	ctx := context.Background()

	for _, item := range []*auth.Session{
		session("s-1", "u-1", "keep"),
		session("s-2", "u-1", "drop-1"),
		session("s-3", "u-1", "drop-2"),
		session("s-4", "u-2", "other-user"),
	} {
		require.NoError(t, store.Create(ctx, item))
	}

	require.NoError(t, store.RevokeOthers(ctx, "u-1", "keep"))

	_, err := store.FindByTokenHash(ctx, "keep")
	assert.NoError(t, err)
	_, err = store.FindByTokenHash(ctx, "other-user")
	assert.NoError(t, err)

	for _, hash := range []string{"drop-1", "drop-2"} {
		_, err := store.FindByTokenHash(ctx, hash)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound), hash)
	}

	require.NoError(t, store.RevokeOthers(ctx, "u-1", ""))
	_, err = store.FindByTokenHash(ctx, "keep")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
