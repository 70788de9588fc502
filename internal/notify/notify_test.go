package notify_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/nikolayk812/rocketshoes-cart/internal/cart"
	"github.com/nikolayk812/rocketshoes-cart/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFromOutcome(t *testing.T) {
	tests := []struct {
		name       string
		outcome    cart.Outcome
		wantSignal notify.Signal
		wantOK     bool
	}{
		{
			name:    "applied: no signal",
			outcome: cart.Outcome{Op: cart.OpAdd, Kind: cart.Applied},
		},
		{
			name:    "unchanged update: no signal",
			outcome: cart.Outcome{Op: cart.OpUpdate, Kind: cart.Unchanged},
		},
		{
			name:       "add stock exceeded",
			outcome:    cart.Outcome{Op: cart.OpAdd, Kind: cart.StockExceeded},
			wantSignal: notify.StockExceeded,
			wantOK:     true,
		},
		{
			name:       "update stock exceeded",
			outcome:    cart.Outcome{Op: cart.OpUpdate, Kind: cart.StockExceeded},
			wantSignal: notify.StockExceeded,
			wantOK:     true,
		},
		{
			name:       "add failed",
			outcome:    cart.Outcome{Op: cart.OpAdd, Kind: cart.Failed, Err: errors.New("x")},
			wantSignal: notify.AddFailed,
			wantOK:     true,
		},
		{
			name:       "remove not found",
			outcome:    cart.Outcome{Op: cart.OpRemove, Kind: cart.NotFound, Err: cart.ErrItemNotFound},
			wantSignal: notify.RemoveFailed,
			wantOK:     true,
		},
		{
			name:       "remove failed",
			outcome:    cart.Outcome{Op: cart.OpRemove, Kind: cart.Failed},
			wantSignal: notify.RemoveFailed,
			wantOK:     true,
		},
		{
			name:       "update failed",
			outcome:    cart.Outcome{Op: cart.OpUpdate, Kind: cart.Failed},
			wantSignal: notify.UpdateFailed,
			wantOK:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal, ok := notify.FromOutcome(tt.outcome)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantSignal, signal)
		})
	}
}

func TestMessage(t *testing.T) {
	en := notify.NewPrinter(language.English)
	ptBR := notify.NewPrinter(language.BrazilianPortuguese)

	assert.Equal(t, "requested quantity exceeds stock", notify.StockExceeded.Message(en))
	assert.Equal(t, "failed to add product", notify.AddFailed.Message(en))
	assert.Equal(t, "failed to remove product", notify.RemoveFailed.Message(nil))
	assert.Equal(t, "failed to update quantity", notify.UpdateFailed.String())

	assert.Equal(t, "Quantidade solicitada fora de estoque", notify.StockExceeded.Message(ptBR))
	assert.Equal(t, "Erro na adição do produto", notify.AddFailed.Message(ptBR))
	assert.Equal(t, "Erro na remoção do produto", notify.RemoveFailed.Message(ptBR))
	assert.Equal(t, "Erro na alteração de quantidade do produto", notify.UpdateFailed.Message(ptBR))

	assert.Equal(t, "unknown", notify.Signal(99).Message(en))
}

func TestSurface(t *testing.T) {
	rec := &notify.Recorder{}
	ctx := context.Background()

	_, sent := notify.Surface(ctx, rec, cart.Outcome{Op: cart.OpAdd, Kind: cart.Applied})
	assert.False(t, sent)

	signal, sent := notify.Surface(ctx, rec, cart.Outcome{Op: cart.OpRemove, Kind: cart.NotFound})
	assert.True(t, sent)
	assert.Equal(t, notify.RemoveFailed, signal)

	assert.Equal(t, []notify.Signal{notify.RemoveFailed}, rec.Signals())
}

func TestWriterNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewWriterNotifier(&buf, notify.NewPrinter(language.BrazilianPortuguese))

	n.Notify(context.Background(), notify.StockExceeded)

	assert.Equal(t, "! Quantidade solicitada fora de estoque\n", buf.String())
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	rec := &notify.Recorder{}
	n := notify.Multi{notify.NewLogNotifier(logger, notify.NewPrinter(language.English)), rec}

	n.Notify(context.Background(), notify.UpdateFailed)

	require.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"msg":"failed to update quantity"`)
	assert.Contains(t, buf.String(), `"component":"notify"`)
	assert.Equal(t, []notify.Signal{notify.UpdateFailed}, rec.Signals())
}
