package resilient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/event_split_app/internal/repositories/memory"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flakyStore struct {
	*memory.StateStore
	fail  bool
	calls int
	delay time.Duration
}

func (f *flakyStore) SaveState(ctx context.Context, name string, state []byte) error {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.fail {
		return errors.New("backend down")
	}
	return f.StateStore.SaveState(ctx, name, state)
}

func TestStateStore_PassThrough(t *testing.T) {
	inner := &flakyStore{StateStore: memory.NewStateStore()}
	store := New(inner, Config{Timeout: time.Second}, nil)
	ctx := context.Background()

	require.NoError(t, store.SaveState(ctx, "events", []byte(`[]`)))
	data, err := store.LoadState(ctx, "events")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	data, err = store.LoadState(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStateStore_OpensAfterConsecutiveFailures(t *testing.T) {
	inner := &flakyStore{StateStore: memory.NewStateStore(), fail: true}
	store := New(inner, Config{FailThreshold: 2, OpenTimeout: time.Minute}, nil)
	ctx := context.Background()

	assert.Error(t, store.SaveState(ctx, "events", []byte(`[]`)))
	assert.Error(t, store.SaveState(ctx, "events", []byte(`[]`)))
	assert.Equal(t, gobreaker.StateOpen, store.State())

	err := store.SaveState(ctx, "events", []byte(`[]`))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, inner.calls, "open breaker must not reach the backend")
}

func TestStateStore_Timeout(t *testing.T) {
	inner := &flakyStore{StateStore: memory.NewStateStore(), delay: time.Second}
	store := New(inner, Config{Timeout: 20 * time.Millisecond}, nil)

	err := store.SaveState(context.Background(), "events", []byte(`[]`))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
