package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
)

// persistedStore holds one named collection in memory and writes it through to a
// StateStore. Committed items are never modified in place: every mutation builds a
// new slice, saves it, and only then swaps it in.
type persistedStore[E any] struct {
	name  string
	items []E
	// dirty is set when the durable copy may differ from items.
	dirty bool
}

func newPersistedStore[E any](name string) *persistedStore[E] {
	return &persistedStore[E]{name: name}
}

// snapshot returns a shallow copy of the committed items.
func (p *persistedStore[E]) snapshot() []E {
	return slices.Clone(p.items)
}

// decode parses a saved blob without touching committed state.
func (p *persistedStore[E]) decode(ctx context.Context, store portsrepo.StateReader) ([]E, error) {
	data, err := store.LoadState(ctx, p.name)
	if err != nil {
		return nil, apperrors.NewPersistenceError(fmt.Sprintf("failed to load %s", p.name), err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var items []E
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, apperrors.NewPersistenceError(fmt.Sprintf("corrupt %s state", p.name), err)
	}
	return items, nil
}

// save writes items without changing committed state.
func (p *persistedStore[E]) save(ctx context.Context, store portsrepo.StateWriter, items []E) error {
	if items == nil {
		items = []E{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: failed to encode %s: %v", apperrors.ErrInternal, p.name, err)
	}
	if err := store.SaveState(ctx, p.name, data); err != nil {
		return apperrors.NewPersistenceError(fmt.Sprintf("failed to save %s", p.name), err)
	}
	return nil
}

// commit saves next and swaps it in. On failure the committed items are kept and the
// store is marked dirty, since a failed write may still have reached the backend.
func (p *persistedStore[E]) commit(ctx context.Context, store portsrepo.StateWriter, next []E) error {
	if err := p.save(ctx, store, next); err != nil {
		p.dirty = true
		return err
	}
	p.items = next
	p.dirty = false
	return nil
}

// force swaps next in regardless of whether the save succeeds. It is used for
// compensations, where memory must follow the other stores even if the durable
// copy cannot.
func (p *persistedStore[E]) force(ctx context.Context, store portsrepo.StateWriter, next []E) error {
	p.items = next
	if err := p.save(ctx, store, next); err != nil {
		p.dirty = true
		return err
	}
	p.dirty = false
	return nil
}

// sync re-saves the committed items.
func (p *persistedStore[E]) sync(ctx context.Context, store portsrepo.StateWriter) error {
	if err := p.save(ctx, store, p.items); err != nil {
		p.dirty = true
		return err
	}
	p.dirty = false
	return nil
}
