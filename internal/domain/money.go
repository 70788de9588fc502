package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/message"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

// Format renders the amount with the currency symbol using the printer's locale.
func (m Money) Format(p *message.Printer) string {
	return p.Sprint(currency.Symbol(m.Currency.Amount(m.Amount.InexactFloat64())))
}
