// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/gumruk/internal/platform/apperr"
	"github.com/taibuivan/gumruk/internal/platform/constants"
)

// RedisSessionStore implements [SessionStore].
//
// Each session is one JSON value under auth:session:<digest> expiring with the
// session, plus a member of the auth:user_sessions:<user> set used to revoke
// a user's other sessions.
type RedisSessionStore struct {
	client *redis.Client
}

// NewSessionStore returns a Redis-backed [SessionStore].
func NewSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(tokenHash string) string {
	return constants.RedisPrefixSession + tokenHash
}

func userSessionsKey(userID string) string {
	return constants.RedisPrefixUserSession + userID
}

/*
Create stores session until its ExpiresAt.

Returns:
  - error: when the session is already expired or Redis fails
*/
func (store *RedisSessionStore) Create(context context.Context, session *Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("redis_session_create_failed: session already expired")
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	_, err = store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Set(context, sessionKey(session.TokenHash), raw, ttl)
		pipe.SAdd(context, userSessionsKey(session.UserID), session.TokenHash)
		pipe.Expire(context, userSessionsKey(session.UserID), RefreshTokenTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}
	return nil
}

// FindByTokenHash loads a live session.
func (store *RedisSessionStore) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	raw, err := store.client.Get(context, sessionKey(tokenHash)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("Session")
	}
	if err != nil {
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}
	session.TokenHash = tokenHash
	return session, nil
}

// Revoke deletes the session and its index entry.
func (store *RedisSessionStore) Revoke(context context.Context, session *Session) error {
	_, err := store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Del(context, sessionKey(session.TokenHash))
		pipe.SRem(context, userSessionsKey(session.UserID), session.TokenHash)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}
	return nil
}

// RevokeOthers deletes every session of userID except keepTokenHash.
// An empty keepTokenHash revokes them all.
func (store *RedisSessionStore) RevokeOthers(context context.Context, userID, keepTokenHash string) error {
	indexKey := userSessionsKey(userID)

	hashes, err := store.client.SMembers(context, indexKey).Result()
	if err != nil {
		return fmt.Errorf("redis_session_list_failed: %w", err)
	}

	_, err = store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		for _, hash := range hashes {
			if hash == keepTokenHash {
				continue
			}
			pipe.Del(context, sessionKey(hash))
			pipe.SRem(context, indexKey, hash)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_session_revoke_others_failed: %w", err)
	}
	return nil
}
