package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/rocketshoes-cart/internal/domain"
)

// ErrNotFound is returned by Storage.Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

type StockReader interface {
	GetStock(ctx context.Context, productID int64) (domain.StockInfo, error)
}

type CatalogReader interface {
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
}

type CatalogLister interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// Storage is durable key-value storage holding one serialized blob per key.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

type CartRepository interface {
	Load(ctx context.Context) (domain.Cart, error)
	Save(ctx context.Context, cart domain.Cart) error
}
