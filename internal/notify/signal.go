package notify

import (
	"fmt"

	"github.com/nikolayk812/rocketshoes-cart/internal/cart"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Signal is a user-facing notification raised by a failed cart operation.
type Signal int

const (
	StockExceeded Signal = iota + 1
	AddFailed
	RemoveFailed
	UpdateFailed
)

var keys = map[Signal]string{
	StockExceeded: "requested quantity exceeds stock",
	AddFailed:     "failed to add product",
	RemoveFailed:  "failed to remove product",
	UpdateFailed:  "failed to update quantity",
}

var translations = map[language.Tag]map[Signal]string{
	language.English: keys,
	language.BrazilianPortuguese: {
		StockExceeded: "Quantidade solicitada fora de estoque",
		AddFailed:     "Erro na adição do produto",
		RemoveFailed:  "Erro na remoção do produto",
		UpdateFailed:  "Erro na alteração de quantidade do produto",
	},
}

var messages = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, byKey := range translations {
		for signal, msg := range byKey {
			if err := b.SetString(tag, keys[signal], msg); err != nil {
				panic(fmt.Sprintf("notify: catalog %s: %v", tag, err))
			}
		}
	}
	return b
}

// NewPrinter returns a printer resolving signal messages for the given locale.
func NewPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

func (s Signal) String() string {
	if key, ok := keys[s]; ok {
		return key
	}
	return "unknown"
}

// Message renders the signal with p; a nil printer yields the English text.
func (s Signal) Message(p *message.Printer) string {
	key, ok := keys[s]
	if !ok {
		return "unknown"
	}
	if p == nil {
		return key
	}
	return p.Sprintf(message.Key(key, key))
}

// FromOutcome maps an operation outcome to the signal the user must see.
// Applied and Unchanged outcomes raise nothing.
func FromOutcome(o cart.Outcome) (Signal, bool) {
	switch o.Kind {
	case cart.StockExceeded:
		return StockExceeded, true
	case cart.NotFound, cart.Failed:
		switch o.Op {
		case cart.OpAdd:
			return AddFailed, true
		case cart.OpRemove:
			return RemoveFailed, true
		case cart.OpUpdate:
			return UpdateFailed, true
		}
	}
	return 0, false
}
