package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStateStore()

	data, err := store.LoadState(ctx, "events")
	require.NoError(t, err)
	assert.Nil(t, data)

	blob := []byte(`[{"eventID":"e1"}]`)
	require.NoError(t, store.SaveState(ctx, "events", blob))
	blob[0] = 'X'

	data, err = store.LoadState(ctx, "events")
	require.NoError(t, err)
	assert.Equal(t, `[{"eventID":"e1"}]`, string(data))
	assert.Equal(t, 1, store.Saves())
}

func TestStateStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStateStore()
	assert.ErrorIs(t, store.SaveState(ctx, "events", []byte("[]")), context.Canceled)
	_, err := store.LoadState(ctx, "events")
	assert.ErrorIs(t, err, context.Canceled)
}
