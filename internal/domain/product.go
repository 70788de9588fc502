package domain

import "github.com/shopspring/decimal"

// Prices are JSON numbers, matching the catalog API and previously saved carts.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID    int64           `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// StockInfo is the maximum number of units of a product available at fetch time.
type StockInfo struct {
	ProductID int64 `json:"id"`
	Amount    int   `json:"amount"`
}
