// Package credentials resolves the bearer token attached to outbound
// marketplace requests. Tokens live in a key-value store under a set of
// historical keys; resolution walks the keys in priority order and fails
// open to an anonymous request when nothing usable is found.
package credentials

import (
	"context"
	"fmt"

	errx "github.com/ReganLema/M-CONNECT-sub001/internal/core/error"
	"github.com/redis/go-redis/v9"
)

// Storage keys in priority order. AccessTokenKey is written by current
// versions of the app; the other two are still read so sessions created
// before the key rename keep working.
const (
	AccessTokenKey     = "access_token"
	LegacyTokenKey     = "token"
	LegacyAuthTokenKey = "auth_token"
)

// DefaultKeys is the canonical key priority order.
var DefaultKeys = []string{AccessTokenKey, LegacyTokenKey, LegacyAuthTokenKey}

// Store is the key-value surface credentials are read from.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
}

// RedisStore reads credentials from redis under a preference namespace,
// mirroring the app's on-device preference storage.
type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) prefKey(key string) string {
	return fmt.Sprintf("prefs:%s", key)
}

// Get returns the value stored under key. A missing key maps to a NotFound
// error so the resolver can distinguish "unset" from "storage down" in logs.
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, s.prefKey(key)).Result()
	if err != nil {
		return "", errx.WrapRedis(err)
	}
	return val, nil
}

// Set stores a token under key. Used when a login flow hands a fresh token
// to the data layer; rotation takes effect on the next outbound request
// because tokens are re-read on every call.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.prefKey(key), value, 0).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
