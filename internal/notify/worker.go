package notify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
)

// Worker buffers change events and hands them to a Sink on its own goroutine.
// OnChange never blocks: when the buffer is full the event is dropped.
type Worker struct {
	eventCh chan domain.ChangeEvent
	sink    Sink
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	stopped atomic.Bool
	dropped atomic.Int64
}

var _ portssvc.ChangeListener = (*Worker)(nil)

func NewWorker(sink Sink, bufferSize int) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		eventCh: make(chan domain.ChangeEvent, bufferSize),
		sink:    sink,
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (w *Worker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.ctx.Done():
				slog.Info("Draining change events before shutdown", slog.Int("remaining_events", len(w.eventCh)))
				for len(w.eventCh) > 0 {
					w.deliver(context.Background(), <-w.eventCh)
				}
				return
			case change := <-w.eventCh:
				w.deliver(w.ctx, change)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, change domain.ChangeEvent) {
	if err := w.sink.Deliver(ctx, change); err != nil {
		slog.Error("Failed to deliver change event",
			slog.Any("error", err),
			slog.String("store", change.Store),
			slog.String("entity_id", change.EntityID))
	}
}

// OnChange enqueues the change for delivery.
func (w *Worker) OnChange(_ context.Context, change domain.ChangeEvent) {
	if w.stopped.Load() {
		w.dropped.Add(1)
		return
	}
	select {
	case w.eventCh <- change:
	default:
		w.dropped.Add(1)
		slog.Warn("Change channel full, dropping event", slog.String("store", change.Store), slog.String("entity_id", change.EntityID))
	}
}

// Dropped reports how many events were discarded.
func (w *Worker) Dropped() int64 {
	return w.dropped.Load()
}

// Shutdown stops accepting events and waits for the buffer to drain.
func (w *Worker) Shutdown() {
	w.stopped.Store(true)
	w.cancel()
	w.wg.Wait()
}
