package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/nikolayk812/rocketshoes-cart/internal/domain"
	"github.com/nikolayk812/rocketshoes-cart/internal/migrations"
	"github.com/nikolayk812/rocketshoes-cart/internal/port"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	if err := migrations.Up(connStr); err != nil {
		return nil, "", fmt.Errorf("migrations.Up: %w", err)
	}

	return postgresContainer, connStr, nil
}

// testStorage checks the behaviour every port.Storage implementation shares.
func testStorage(t *testing.T, storage port.Storage) {
	t.Helper()

	t.Run("get missing key: not found", func(t *testing.T) {
		_, err := storage.Get(t.Context(), gofakeit.UUID())
		require.ErrorIs(t, err, port.ErrNotFound)
	})

	t.Run("set then get: ok", func(t *testing.T) {
		key := gofakeit.UUID()
		value := []byte(gofakeit.Sentence(5))

		require.NoError(t, storage.Set(t.Context(), key, value))

		got, err := storage.Get(t.Context(), key)
		require.NoError(t, err)
		assert.Equal(t, value, got)
	})

	t.Run("set twice: last writer wins", func(t *testing.T) {
		key := gofakeit.UUID()

		require.NoError(t, storage.Set(t.Context(), key, []byte(`[1]`)))
		require.NoError(t, storage.Set(t.Context(), key, []byte(`[2]`)))

		got, err := storage.Get(t.Context(), key)
		require.NoError(t, err)
		assert.Equal(t, []byte(`[2]`), got)
	})

	t.Run("empty key: error", func(t *testing.T) {
		err := storage.Set(t.Context(), "", []byte(`[]`))
		require.EqualError(t, err, "key is empty")

		_, err = storage.Get(t.Context(), "")
		require.EqualError(t, err, "key is empty")
	})
}

type failingStorage struct {
	getErr error
	setErr error
	value  []byte
}

func (s *failingStorage) Get(context.Context, string) ([]byte, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.value == nil {
		return nil, port.ErrNotFound
	}
	return s.value, nil
}

func (s *failingStorage) Set(_ context.Context, _ string, value []byte) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.value = value
	return nil
}

var errStorageDown = errors.New("storage down")

func randomCartItem() domain.CartItem {
	return domain.CartItem{
		Product: domain.Product{
			ID:    int64(gofakeit.Number(1, 1_000_000)),
			Title: gofakeit.ProductName(),
			Price: decimal.NewFromFloat(gofakeit.Price(1, 100)),
			Image: gofakeit.URL(),
		},
		Amount: gofakeit.Number(1, 10),
	}
}

func randomCart(n int) domain.Cart {
	var cart domain.Cart
	for len(cart.Items) < n {
		item := randomCartItem()
		if cart.Contains(item.ID) {
			continue
		}
		cart = cart.Append(item)
	}
	return cart
}

func assertCart(t *testing.T, expected, actual domain.Cart) {
	t.Helper()

	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	diff := cmp.Diff(expected.Items, actual.Items, decimalComparer, cmpopts.EquateEmpty())
	assert.Empty(t, diff)
}
