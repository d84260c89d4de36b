// Package notify delivers committed state changes to out-of-process consumers.
package notify

import (
	"context"
	"log/slog"

	"github.com/SscSPs/event_split_app/internal/core/domain"
)

// Sink receives change events off the request path.
type Sink interface {
	Deliver(ctx context.Context, change domain.ChangeEvent) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, change domain.ChangeEvent) error

func (f SinkFunc) Deliver(ctx context.Context, change domain.ChangeEvent) error {
	return f(ctx, change)
}

// LogSink writes every change as a structured log line.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Deliver(ctx context.Context, change domain.ChangeEvent) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "State changed",
		slog.String("store", change.Store),
		slog.String("action", string(change.Action)),
		slog.String("entity_id", change.EntityID),
		slog.String("event_id", change.EventID))
	return nil
}

// Fanout forwards each change to every sink in order. A failing sink is logged and
// the remaining sinks still run.
type Fanout []Sink

func (f Fanout) Deliver(ctx context.Context, change domain.ChangeEvent) error {
	for _, sink := range f {
		if err := sink.Deliver(ctx, change); err != nil {
			slog.ErrorContext(ctx, "Failed to deliver change", slog.String("store", change.Store), slog.Any("error", err))
		}
	}
	return nil
}
