package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/fyf-cart/internal/port"
	"github.com/redis/go-redis/v9"
)

// RedisStore is a KeyValueStore on top of plain Redis strings. Keys never expire.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}

	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("client.Del: %w", err)
	}

	return n > 0, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
