package db

import (
	"context"
	"time"
)

const getValue = `-- name: GetValue :one
SELECT value FROM kv_storage
WHERE key = $1
`

func (q *Queries) GetValue(ctx context.Context, key string) ([]byte, error) {
	row := q.db.QueryRow(ctx, getValue, key)
	var value []byte
	err := row.Scan(&value)
	return value, err
}

const setValue = `-- name: SetValue :one
INSERT INTO kv_storage (key, value)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, updated_at = now()
RETURNING updated_at
`

type SetValueParams struct {
	Key   string
	Value []byte
}

func (q *Queries) SetValue(ctx context.Context, arg SetValueParams) (time.Time, error) {
	row := q.db.QueryRow(ctx, setValue, arg.Key, arg.Value)
	var updatedAt time.Time
	err := row.Scan(&updatedAt)
	return updatedAt, err
}
