package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/nikolayk812/rocketshoes-cart/internal/cart"
	"golang.org/x/text/message"
)

type Notifier interface {
	Notify(ctx context.Context, signal Signal)
}

// Surface sends the signal for o, if any, to n and reports whether one was sent.
func Surface(ctx context.Context, n Notifier, o cart.Outcome) (Signal, bool) {
	signal, ok := FromOutcome(o)
	if !ok {
		return 0, false
	}
	n.Notify(ctx, signal)
	return signal, true
}

type logNotifier struct {
	logger  *slog.Logger
	printer *message.Printer
}

func NewLogNotifier(logger *slog.Logger, printer *message.Printer) Notifier {
	return &logNotifier{
		logger:  logger.With("component", "notify"),
		printer: printer,
	}
}

func (n *logNotifier) Notify(ctx context.Context, signal Signal) {
	n.logger.WarnContext(ctx, signal.Message(n.printer), "signal", signal.String())
}

type writerNotifier struct {
	mu      sync.Mutex
	w       io.Writer
	printer *message.Printer
}

// NewWriterNotifier prints one line per signal to w.
func NewWriterNotifier(w io.Writer, printer *message.Printer) Notifier {
	return &writerNotifier{
		w:       w,
		printer: printer,
	}
}

func (n *writerNotifier) Notify(_ context.Context, signal Signal) {
	n.mu.Lock()
	defer n.mu.Unlock()

	_, _ = fmt.Fprintf(n.w, "! %s\n", signal.Message(n.printer))
}

// Recorder keeps every signal it receives.
type Recorder struct {
	mu      sync.Mutex
	signals []Signal
}

func (r *Recorder) Notify(_ context.Context, signal Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.signals = append(r.signals, signal)
}

func (r *Recorder) Signals() []Signal {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Signal(nil), r.signals...)
}

// Multi fans a signal out to several notifiers.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, signal Signal) {
	for _, n := range m {
		n.Notify(ctx, signal)
	}
}
