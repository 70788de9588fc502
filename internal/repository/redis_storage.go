package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/rocketshoes-cart/internal/port"
	"github.com/redis/go-redis/v9"
)

type redisStorage struct {
	client *redis.Client
}

// NewRedisStorage keeps values without expiry; the cart must survive restarts.
func NewRedisStorage(client *redis.Client) port.Storage {
	return &redisStorage{client: client}
}

func (s *redisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}

	return value, nil
}

func (s *redisStorage) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}
