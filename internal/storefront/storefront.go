package storefront

import (
	"context"
	"fmt"

	"github.com/nikolayk812/rocketshoes-cart/internal/domain"
	"github.com/nikolayk812/rocketshoes-cart/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CartReader exposes the current cart snapshot.
type CartReader interface {
	Cart() domain.Cart
}

type ProductView struct {
	domain.Product
	PriceFormatted string `json:"priceFormatted"`
	CartAmount     int    `json:"cartAmount"`
}

type CartLine struct {
	domain.CartItem
	PriceFormatted    string `json:"priceFormatted"`
	SubtotalFormatted string `json:"subtotalFormatted"`
}

type CartView struct {
	Items          []CartLine `json:"items"`
	Total          string     `json:"total"`
	TotalFormatted string     `json:"totalFormatted"`
}

type Service struct {
	catalog port.CatalogLister
	cart    CartReader
	unit    currency.Unit
	printer *message.Printer

	// concurrent listings share one catalog request
	sfg singleflight.Group
}

func New(catalog port.CatalogLister, cart CartReader, unit currency.Unit, locale language.Tag) *Service {
	return &Service{
		catalog: catalog,
		cart:    cart,
		unit:    unit,
		printer: message.NewPrinter(locale),
	}
}

// List returns the catalog with formatted prices and the amount of each product in the cart.
func (s *Service) List(ctx context.Context) ([]ProductView, error) {
	// The shared request outlives any single caller; each caller stops
	// waiting on its own context.
	ch := s.sfg.DoChan("products", func() (interface{}, error) {
		return s.catalog.ListProducts(context.WithoutCancel(ctx))
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("catalog.ListProducts: %w", ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, fmt.Errorf("catalog.ListProducts: %w", res.Err)
	}

	products := res.Val.([]domain.Product)
	amounts := s.cart.Cart().AmountsByProduct()

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, ProductView{
			Product:        p,
			PriceFormatted: s.FormatPrice(p.Price),
			CartAmount:     amounts[p.ID],
		})
	}

	return views, nil
}

// Summary renders c with per-line subtotals and the cart total.
func (s *Service) Summary(c domain.Cart) CartView {
	lines := make([]CartLine, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, CartLine{
			CartItem:          item,
			PriceFormatted:    s.FormatPrice(item.Price),
			SubtotalFormatted: s.FormatPrice(item.Subtotal()),
		})
	}

	total := c.Total()

	return CartView{
		Items:          lines,
		Total:          total.StringFixed(2),
		TotalFormatted: s.FormatPrice(total),
	}
}

func (s *Service) FormatPrice(amount decimal.Decimal) string {
	return domain.Money{Amount: amount, Currency: s.unit}.Format(s.printer)
}
