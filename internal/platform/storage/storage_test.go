package storage_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/SscSPs/event_split_app/internal/platform/storage"
	"github.com/SscSPs/event_split_app/internal/repositories/memory"
	"github.com/SscSPs/event_split_app/internal/repositories/resilient"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	repos, err := storage.Open(context.Background(), &config.Config{StateBackend: config.BackendMemory}, slog.Default(), false)
	require.NoError(t, err)
	assert.IsType(t, &memory.StateStore{}, repos.State)
	assert.Nil(t, repos.Close)
}

func TestOpen_RedisIsWrapped(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	repos, err := storage.Open(ctx, &config.Config{
		StateBackend:   config.BackendRedis,
		RedisAddr:      mr.Addr(),
		StateKeyPrefix: "test",
	}, slog.Default(), false)
	require.NoError(t, err)
	defer repos.Close(ctx)

	assert.IsType(t, &resilient.StateStore{}, repos.State)
	require.NoError(t, repos.State.SaveState(ctx, "events", []byte(`[]`)))
	got, err := mr.Get("test:events")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := storage.Open(context.Background(), &config.Config{StateBackend: "sqlite"}, slog.Default(), false)
	assert.Error(t, err)
}
