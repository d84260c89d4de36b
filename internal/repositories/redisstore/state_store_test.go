package redisstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*StateStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewWithClient(client, "event_split"), mr
}

func TestStateStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	data, err := store.LoadState(context.Background(), "participants")
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestStateStore_SaveAndLoad(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveState(ctx, "transactions", []byte(`[]`)))
	require.NoError(t, store.SaveState(ctx, "transactions", []byte(`[{"transactionID":"t1"}]`)))

	data, err := store.LoadState(ctx, "transactions")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"transactionID":"t1"}]`, string(data))

	raw, err := mr.Get("event_split:transactions")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"transactionID":"t1"}]`, raw)
}

func TestStateStore_ServerDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	err := store.SaveState(context.Background(), "events", []byte(`[]`))
	assert.Error(t, err)
	_, err = store.LoadState(context.Background(), "events")
	assert.Error(t, err)
}

func TestNew_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := New(context.Background(), Options{Addr: addr})
	assert.ErrorContains(t, err, "failed to ping redis")
}
