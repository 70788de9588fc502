package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/rocketshoes-cart/internal/db"
	"github.com/nikolayk812/rocketshoes-cart/internal/port"
)

type postgresStorage struct {
	q *db.Queries
}

func NewPostgresStorage(pool *pgxpool.Pool) port.Storage {
	return &postgresStorage{q: db.New(pool)}
}

// NewPostgresStorageWithTx writes through a caller-owned transaction; nothing
// is visible to other sessions until the caller commits.
func NewPostgresStorageWithTx(tx pgx.Tx) port.Storage {
	return &postgresStorage{q: db.New(tx)}
}

func (s *postgresStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	value, err := s.q.GetValue(ctx, key)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("q.GetValue: %w", err)
	}

	return value, nil
}

func (s *postgresStorage) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	// single upsert statement, atomic without an explicit transaction
	if _, err := s.q.SetValue(ctx, db.SetValueParams{
		Key:   key,
		Value: value,
	}); err != nil {
		return fmt.Errorf("q.SetValue: %w", err)
	}

	return nil
}
