package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/nikolayk812/rocketshoes-cart/internal/domain"
	"github.com/nikolayk812/rocketshoes-cart/internal/port"
)

// Store owns the cart. AddProduct, RemoveProduct and UpdateProductAmount are
// its only mutators; each one either persists and publishes a new cart or
// leaves both storage and memory untouched.
//
// Mutators are serialized: an operation started while another is waiting on
// the stock or catalog API runs against the cart the first one produced.
// Readers never wait for mutators.
type Store struct {
	stock   port.StockReader
	catalog port.CatalogReader
	repo    port.CartRepository
	logger  *slog.Logger

	mu   sync.Mutex
	cart atomic.Pointer[domain.Cart]
}

// New loads the persisted cart and returns a Store holding it.
func New(ctx context.Context, stock port.StockReader, catalog port.CatalogReader, repo port.CartRepository, logger *slog.Logger) (*Store, error) {
	if stock == nil || catalog == nil || repo == nil {
		return nil, errors.New("stock, catalog and repo are required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	initial, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Load: %w", err)
	}

	s := &Store{
		stock:   stock,
		catalog: catalog,
		repo:    repo,
		logger:  logger.With("component", "cart"),
	}
	s.cart.Store(&initial)

	return s, nil
}

// Cart returns the current cart. The returned value must not be modified.
func (s *Store) Cart() domain.Cart {
	return *s.cart.Load()
}

func (s *Store) AddProduct(ctx context.Context, productID int64) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Cart()
	amount := current.Amount(productID) + 1

	stock, err := s.stock.GetStock(ctx, productID)
	if err != nil {
		return s.fail(OpAdd, productID, current, fmt.Errorf("stock.GetStock: %w", err))
	}
	if exceeds(stock, amount) {
		return s.stockExceeded(OpAdd, productID, current, amount, stock)
	}

	var next domain.Cart
	if current.Contains(productID) {
		next = current.WithAmount(productID, amount)
	} else {
		product, err := s.catalog.GetProduct(ctx, productID)
		if err != nil {
			return s.fail(OpAdd, productID, current, fmt.Errorf("catalog.GetProduct: %w", err))
		}
		if product.ID != productID {
			return s.fail(OpAdd, productID, current, fmt.Errorf("catalog returned product[%d] for product[%d]", product.ID, productID))
		}
		next = current.Append(domain.CartItem{Product: product, Amount: 1})
	}

	return s.commit(ctx, OpAdd, productID, current, next)
}

func (s *Store) RemoveProduct(ctx context.Context, productID int64) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Cart()
	if !current.Contains(productID) {
		s.logger.Warn("remove product not in cart", "product_id", productID)
		return Outcome{
			Op:        OpRemove,
			Kind:      NotFound,
			ProductID: productID,
			Cart:      current,
			Err:       fmt.Errorf("product[%d]: %w", productID, ErrItemNotFound),
		}
	}

	return s.commit(ctx, OpRemove, productID, current, current.Without(productID))
}

// UpdateProductAmount sets the amount of a product already in the cart.
// A non-positive amount is ignored.
func (s *Store) UpdateProductAmount(ctx context.Context, productID int64, amount int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.Cart()
	if amount <= 0 {
		return unchanged(OpUpdate, productID, current)
	}

	stock, err := s.stock.GetStock(ctx, productID)
	if err != nil {
		return s.fail(OpUpdate, productID, current, fmt.Errorf("stock.GetStock: %w", err))
	}
	if exceeds(stock, amount) {
		return s.stockExceeded(OpUpdate, productID, current, amount, stock)
	}

	// Nothing to write for a product that is not in the cart.
	if !current.Contains(productID) {
		return unchanged(OpUpdate, productID, current)
	}

	return s.commit(ctx, OpUpdate, productID, current, current.WithAmount(productID, amount))
}

// commit persists next and only then publishes it.
func (s *Store) commit(ctx context.Context, op Op, productID int64, current, next domain.Cart) Outcome {
	if err := s.repo.Save(ctx, next); err != nil {
		return s.fail(op, productID, current, fmt.Errorf("repo.Save: %w", err))
	}

	s.cart.Store(&next)
	s.logger.Debug("cart updated", "op", op.String(), "product_id", productID, "items", len(next.Items))

	return Outcome{
		Op:        op,
		Kind:      Applied,
		ProductID: productID,
		Cart:      next,
	}
}

func (s *Store) fail(op Op, productID int64, current domain.Cart, err error) Outcome {
	s.logger.Error("cart operation failed", "op", op.String(), "product_id", productID, "error", err)

	return Outcome{
		Op:        op,
		Kind:      Failed,
		ProductID: productID,
		Cart:      current,
		Err:       err,
	}
}

func (s *Store) stockExceeded(op Op, productID int64, current domain.Cart, requested int, stock domain.StockInfo) Outcome {
	s.logger.Info("requested amount exceeds stock", "op", op.String(), "product_id", productID,
		"requested", requested, "stock", stock.Amount)

	return Outcome{
		Op:        op,
		Kind:      StockExceeded,
		ProductID: productID,
		Cart:      current,
	}
}

func unchanged(op Op, productID int64, current domain.Cart) Outcome {
	return Outcome{
		Op:        op,
		Kind:      Unchanged,
		ProductID: productID,
		Cart:      current,
	}
}

func exceeds(stock domain.StockInfo, amount int) bool {
	return stock.Amount == 0 || amount > stock.Amount
}
