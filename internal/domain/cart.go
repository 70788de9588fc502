package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Cart is the ordered, id-unique list of line items.
// Methods never write to the receiver's backing array; every change yields a new Cart.
type Cart struct {
	Items []CartItem
}

type CartItem struct {
	Product
	Amount int `json:"amount"`
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Amount)))
}

func (c Cart) Index(productID int64) int {
	return slices.IndexFunc(c.Items, func(item CartItem) bool {
		return item.ID == productID
	})
}

func (c Cart) Contains(productID int64) bool {
	return c.Index(productID) >= 0
}

// Amount returns the amount of productID in the cart, or 0 if absent.
func (c Cart) Amount(productID int64) int {
	idx := c.Index(productID)
	if idx < 0 {
		return 0
	}
	return c.Items[idx].Amount
}

func (c Cart) Append(item CartItem) Cart {
	items := make([]CartItem, 0, len(c.Items)+1)
	items = append(items, c.Items...)
	items = append(items, item)

	return Cart{Items: items}
}

// WithAmount returns a copy of the cart where the item for productID has the given amount.
// Items with other ids are copied untouched; an absent productID yields an equal copy.
func (c Cart) WithAmount(productID int64, amount int) Cart {
	items := make([]CartItem, len(c.Items))
	for i, item := range c.Items {
		if item.ID == productID {
			item.Amount = amount
		}
		items[i] = item
	}

	return Cart{Items: items}
}

func (c Cart) Without(productID int64) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ID != productID {
			items = append(items, item)
		}
	}

	return Cart{Items: items}
}

func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// AmountsByProduct maps product id to the amount held in the cart.
func (c Cart) AmountsByProduct() map[int64]int {
	amounts := make(map[int64]int, len(c.Items))
	for _, item := range c.Items {
		amounts[item.ID] = item.Amount
	}
	return amounts
}
