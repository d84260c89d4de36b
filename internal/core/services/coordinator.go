package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/google/uuid"
)

// coordinator owns all in-memory state and serializes access to it. Every mutation
// holds the write lock from validation through persistence to the swap; reads hold
// the read lock and never touch the state store.
type coordinator struct {
	mu       sync.RWMutex
	store    portsrepo.StateStore
	listener portssvc.ChangeListener
	now      func() time.Time
	newID    func() string

	events       *persistedStore[domain.Event]
	participants *persistedStore[domain.Participant]
	transactions *persistedStore[domain.Transaction] // newest first
	joinRequests *persistedStore[domain.JoinRequest] // oldest first
}

// CoordinatorOption configures the shared state coordinator.
type CoordinatorOption func(*coordinator)

// WithChangeListener registers the listener notified after each committed mutation.
func WithChangeListener(l portssvc.ChangeListener) CoordinatorOption {
	return func(c *coordinator) {
		c.listener = l
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CoordinatorOption {
	return func(c *coordinator) {
		c.now = now
	}
}

// WithIDGenerator overrides entity id generation.
func WithIDGenerator(newID func() string) CoordinatorOption {
	return func(c *coordinator) {
		c.newID = newID
	}
}

func newCoordinator(store portsrepo.StateStore, opts ...CoordinatorOption) *coordinator {
	c := &coordinator{
		store:        store,
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
		events:       newPersistedStore[domain.Event](portsrepo.StoreEvents),
		participants: newPersistedStore[domain.Participant](portsrepo.StoreParticipants),
		transactions: newPersistedStore[domain.Transaction](portsrepo.StoreTransactions),
		joinRequests: newPersistedStore[domain.JoinRequest](portsrepo.StoreJoinRequests),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// notify runs with c.mu held for writing, so listeners must return promptly.
func (c *coordinator) notify(ctx context.Context, store string, action domain.ChangeAction, entityID, eventID string) {
	if c.listener == nil {
		return
	}
	c.listener.OnChange(ctx, domain.ChangeEvent{
		Store:      store,
		Action:     action,
		EntityID:   entityID,
		EventID:    eventID,
		OccurredAt: c.now(),
	})
}

// Load replaces in-memory state with the state store's contents. Nothing is
// swapped unless every store loads.
func (c *coordinator) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	events, err := c.events.decode(ctx, c.store)
	if err != nil {
		return err
	}
	participants, err := c.participants.decode(ctx, c.store)
	if err != nil {
		return err
	}
	transactions, err := c.transactions.decode(ctx, c.store)
	if err != nil {
		return err
	}
	joinRequests, err := c.joinRequests.decode(ctx, c.store)
	if err != nil {
		return err
	}

	c.events.items, c.events.dirty = events, false
	c.participants.items, c.participants.dirty = participants, false
	c.transactions.items, c.transactions.dirty = transactions, false
	c.joinRequests.items, c.joinRequests.dirty = joinRequests, false

	middleware.GetLoggerFromCtx(ctx).Info("State loaded",
		slog.Int("events", len(events)),
		slog.Int("participants", len(participants)),
		slog.Int("transactions", len(transactions)),
		slog.Int("join_requests", len(joinRequests)))
	return nil
}

// Sync re-saves every store (force) or only the dirty ones.
func (c *coordinator) Sync(ctx context.Context, force bool) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	type syncer struct {
		name  string
		dirty bool
		sync  func(context.Context, portsrepo.StateWriter) error
	}
	all := []syncer{
		{c.events.name, c.events.dirty, c.events.sync},
		{c.participants.name, c.participants.dirty, c.participants.sync},
		{c.transactions.name, c.transactions.dirty, c.transactions.sync},
		{c.joinRequests.name, c.joinRequests.dirty, c.joinRequests.sync},
	}

	var synced []string
	var errs []error
	for _, s := range all {
		if !force && !s.dirty {
			continue
		}
		if err := s.sync(ctx, c.store); err != nil {
			errs = append(errs, err)
			continue
		}
		synced = append(synced, s.name)
	}
	return synced, errors.Join(errs...)
}

// Dirty reports the stores whose durable copy may be stale.
func (c *coordinator) Dirty() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var names []string
	for _, s := range []struct {
		name  string
		dirty bool
	}{
		{c.events.name, c.events.dirty},
		{c.participants.name, c.participants.dirty},
		{c.transactions.name, c.transactions.dirty},
		{c.joinRequests.name, c.joinRequests.dirty},
	} {
		if s.dirty {
			names = append(names, s.name)
		}
	}
	return names
}
