package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nikolayk812/rocketshoes-cart/internal/domain"
	"github.com/nikolayk812/rocketshoes-cart/internal/port"
)

// DefaultCartKey is the namespaced key holding the serialized cart.
const DefaultCartKey = "@RocketShoes:cart"

var ErrInvalidCart = errors.New("invalid cart")

type cartRepository struct {
	storage port.Storage
	key     string
}

func NewCart(storage port.Storage, key string) (port.CartRepository, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return &cartRepository{
		storage: storage,
		key:     key,
	}, nil
}

// Load returns the persisted cart, or an empty cart when nothing was stored yet.
func (r *cartRepository) Load(ctx context.Context) (domain.Cart, error) {
	data, err := r.storage.Get(ctx, r.key)
	if errors.Is(err, port.ErrNotFound) {
		return domain.Cart{}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("storage.Get: %w", err)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return domain.Cart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	if err := validateItems(items); err != nil {
		return domain.Cart{}, fmt.Errorf("validateItems: %w", err)
	}

	return domain.Cart{Items: items}, nil
}

func (r *cartRepository) Save(ctx context.Context, cart domain.Cart) error {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.storage.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("storage.Set: %w", err)
	}

	return nil
}

func validateItems(items []domain.CartItem) error {
	seen := make(map[int64]struct{}, len(items))

	for _, item := range items {
		if item.Amount < 1 {
			return fmt.Errorf("%w: product[%d] amount %d", ErrInvalidCart, item.ID, item.Amount)
		}
		if _, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: product[%d] duplicated", ErrInvalidCart, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	return nil
}
