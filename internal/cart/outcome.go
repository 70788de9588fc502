package cart

import (
	"errors"

	"github.com/nikolayk812/rocketshoes-cart/internal/domain"
)

var ErrItemNotFound = errors.New("item not found in cart")

// Op names the store operation that produced an Outcome.
type Op int

const (
	OpAdd Op = iota + 1
	OpRemove
	OpUpdate
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

type Kind int

const (
	// Applied: the new cart was persisted and is now current.
	Applied Kind = iota + 1
	// Unchanged: nothing to do; no signal is raised.
	Unchanged
	// StockExceeded: the requested amount is above the available stock.
	StockExceeded
	// NotFound: the product is not in the cart.
	NotFound
	// Failed: a fetch or the persistence write failed.
	Failed
)

func (k Kind) String() string {
	switch k {
	case Applied:
		return "applied"
	case Unchanged:
		return "unchanged"
	case StockExceeded:
		return "stock_exceeded"
	case NotFound:
		return "not_found"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome is the result of a store operation. Cart is the current cart after
// the operation, whether or not it changed.
type Outcome struct {
	Op        Op
	Kind      Kind
	ProductID int64
	Cart      domain.Cart
	Err       error
}

func (o Outcome) OK() bool {
	return o.Kind == Applied || o.Kind == Unchanged
}
