package resilient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	"github.com/sony/gobreaker"
)

// Config controls the breaker and the per-call timeout.
type Config struct {
	Name        string
	Timeout     time.Duration // per call; zero disables
	MaxRequests uint32        // allowed through while half-open
	Interval    time.Duration // closed-state counter reset period
	OpenTimeout time.Duration // how long the breaker stays open
	// FailThreshold is the number of consecutive failures that opens the breaker.
	FailThreshold uint32
}

// StateStore decorates another StateStore with a per-call timeout and a circuit
// breaker, so a dead backend fails fast instead of holding the writer lock.
type StateStore struct {
	next    portsrepo.StateStore
	breaker *gobreaker.CircuitBreaker
	timeout time.Duration
	logger  *slog.Logger
}

var _ portsrepo.StateStore = (*StateStore)(nil)

// New wraps next. logger may be nil.
func New(next portsrepo.StateStore, cfg Config, logger *slog.Logger) *StateStore {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := cfg.FailThreshold
	if threshold == 0 {
		threshold = 5
	}
	name := cfg.Name
	if name == "" {
		name = "state-store"
	}

	s := &StateStore{next: next, timeout: cfg.Timeout, logger: logger}
	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			s.logger.Warn("State store circuit breaker changed state",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	return s
}

// State reports the breaker state.
func (s *StateStore) State() gobreaker.State {
	return s.breaker.State()
}

func (s *StateStore) LoadState(ctx context.Context, storeName string) ([]byte, error) {
	out, err := s.execute(ctx, func(ctx context.Context) (any, error) {
		return s.next.LoadState(ctx, storeName)
	})
	if err != nil {
		return nil, err
	}
	data, _ := out.([]byte)
	return data, nil
}

func (s *StateStore) SaveState(ctx context.Context, storeName string, state []byte) error {
	_, err := s.execute(ctx, func(ctx context.Context) (any, error) {
		return nil, s.next.SaveState(ctx, storeName, state)
	})
	return err
}

func (s *StateStore) execute(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	out, err := s.breaker.Execute(func() (any, error) {
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
		return fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) {
		return nil, fmt.Errorf("state store unavailable (circuit breaker open): %w", err)
	}
	if errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("state store recovering (too many requests): %w", err)
	}
	return out, err
}
