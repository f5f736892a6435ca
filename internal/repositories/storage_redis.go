package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "shopit:state:"

// RedisStorage keeps session state in Redis under the shopit:state: prefix.
type RedisStorage struct {
	rdb *redis.Client
	ctx context.Context
}

// NewRedisStorage connects to Redis at addr and verifies the connection.
func NewRedisStorage(addr string) (*RedisStorage, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return &RedisStorage{rdb: rdb, ctx: ctx}, nil
}

func (s *RedisStorage) storageKey(key string) string {
	return redisKeyPrefix + key
}

// Get returns the value stored under key, if any.
func (s *RedisStorage) Get(key string) ([]byte, bool, error) {
	value, err := s.rdb.Get(s.ctx, s.storageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state key %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key with no expiry; session state lives until the
// user signs out or the cart is cleared.
func (s *RedisStorage) Set(key string, value []byte) error {
	if err := s.rdb.Set(s.ctx, s.storageKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state key %s: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key. Absent keys are not an error.
func (s *RedisStorage) Delete(key string) error {
	if err := s.rdb.Del(s.ctx, s.storageKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete state key %s: %w", key, err)
	}
	return nil
}
