package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Redis-backed [Store]. Records are namespaced as
// <prefix>:<sessionID>:<record> and expire with the session lifetime so
// logout-by-abandonment cannot leak identity records.
type RedisStore struct {
	redis  redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a [RedisStore]. prefix sets the key namespace;
// recordTTL bounds how long a record may outlive its last write. A zero
// recordTTL means records persist until cleared.
func NewRedisStore(client redis.UniversalClient, prefix string, recordTTL time.Duration) *RedisStore {
	if prefix == "" {
		prefix = "iphid"
	}
	return &RedisStore{
		redis:  client,
		prefix: prefix,
		ttl:    recordTTL,
	}
}

func (s *RedisStore) key(sessionID string, record Record) string {
	return s.prefix + ":" + sessionID + ":" + string(record)
}

// Read fetches a record. An absent key resolves to ("", false, nil).
//
//	Performance: 1 Redis GET.
func (s *RedisStore) Read(ctx context.Context, sessionID string, record Record) (string, bool, error) {
	value, err := s.redis.Get(ctx, s.key(sessionID, record)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return value, true, nil
}

// Write stores a record, refreshing its TTL.
//
//	Performance: 1 Redis SET.
func (s *RedisStore) Write(ctx context.Context, sessionID string, record Record, value string) error {
	if err := s.redis.Set(ctx, s.key(sessionID, record), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Clear removes a record. Clearing an absent record succeeds.
//
//	Performance: 1 Redis DEL.
func (s *RedisStore) Clear(ctx context.Context, sessionID string, record Record) error {
	if err := s.redis.Del(ctx, s.key(sessionID, record)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
