package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisSessionStore keeps session blobs in Redis under a key prefix.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
}

// NewRedisSessionStore connects to addr and returns a store namespacing its
// keys with prefix.
func NewRedisSessionStore(addr, prefix string) *RedisSessionStore {
	return NewRedisSessionStoreWithClient(redis.NewClient(&redis.Options{Addr: addr}), prefix)
}

// NewRedisSessionStoreWithClient wraps an existing client.
func NewRedisSessionStoreWithClient(client *redis.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{client: client, prefix: prefix}
}

// Ping checks connectivity.
func (r *RedisSessionStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("session redis: ping: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session redis: get %q: %w", key, err)
	}
	return v, nil
}

// Set stores value without expiry, matching local storage semantics.
func (r *RedisSessionStore) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("session redis: set %q: %w", key, err)
	}
	return nil
}

func (r *RedisSessionStore) Clear(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("session redis: clear %q: %w", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (r *RedisSessionStore) Close() error {
	return r.client.Close()
}
