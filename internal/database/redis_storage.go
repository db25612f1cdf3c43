package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSessionPrefix = "school:session:"

// RedisStorage implements fiber.Storage on top of a go-redis client. Sessions
// and login rate-limit counters use it so both survive restarts and are shared
// between instances.
type RedisStorage struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedisStorage wraps the client; an empty prefix uses the default namespace.
func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	if prefix == "" {
		prefix = defaultSessionPrefix
	}
	return &RedisStorage{client: client, prefix: prefix, timeout: 3 * time.Second}
}

// OpenRedisStorage dials the Redis server at url and fails fast when it
// does not answer a PING. The returned storage owns the client.
func OpenRedisStorage(ctx context.Context, url, prefix string) (*RedisStorage, error) {
	if url == "" {
		return nil, fmt.Errorf("redis url must not be empty")
	}

	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return NewRedisStorage(client, prefix), nil
}

// Namespace returns a storage sharing the same client under another key prefix.
// Only the original storage should be closed.
func (s *RedisStorage) Namespace(prefix string) *RedisStorage {
	return &RedisStorage{client: s.client, prefix: prefix, timeout: s.timeout}
}

// Get returns nil without error when the key does not exist, as fiber expects.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	ctx, cancel := s.context()
	defer cancel()

	value, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return value, err
}

// Set stores the value; a zero expiration keeps the key until deleted.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	if key == "" || len(val) == 0 {
		return nil
	}
	ctx, cancel := s.context()
	defer cancel()

	return s.client.Set(ctx, s.prefix+key, val, exp).Err()
}

// Delete removes a single session.
func (s *RedisStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	ctx, cancel := s.context()
	defer cancel()

	return s.client.Del(ctx, s.prefix+key).Err()
}

// Reset removes every session under the storage prefix.
func (s *RedisStorage) Reset() error {
	ctx, cancel := s.context()
	defer cancel()

	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close closes the underlying client.
func (s *RedisStorage) Close() error {
	return s.client.Close()
}

func (s *RedisStorage) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}
