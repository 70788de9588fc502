package repository

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/rocketshoes-cart/internal/port"
)

type MemoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		values: make(map[string][]byte),
	}
}

func (s *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, port.ErrNotFound
	}

	return bytes.Clone(value), nil
}

func (s *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = bytes.Clone(value)

	return nil
}
