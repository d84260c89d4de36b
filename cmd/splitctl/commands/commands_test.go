package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	"github.com/SscSPs/event_split_app/internal/core/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/SscSPs/event_split_app/internal/repositories/memory"
	"github.com/SscSPs/event_split_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useStores points the CLI at in-memory stores keyed by backend name.
func useStores(t *testing.T, configured string, stores map[string]*memory.StateStore) {
	t.Helper()
	prev := openRepos
	openRepos = func(_ context.Context, backend string) (*config.Config, portsrepo.RepositoryProvider, error) {
		if backend == "" {
			backend = configured
		}
		return &config.Config{StateBackend: backend}, portsrepo.RepositoryProvider{State: stores[backend]}, nil
	}
	t.Cleanup(func() { openRepos = prev })
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seed(t *testing.T, store *memory.StateStore) string {
	t.Helper()
	ctx := context.Background()
	svc := services.NewServiceContainer(&config.Config{}, portsrepo.RepositoryProvider{State: store})
	require.NoError(t, svc.State.Load(ctx))

	event, err := svc.Event.CreateEvent(ctx, dto.CreateEventRequest{Title: "Cabin weekend"}, "organizer")
	require.NoError(t, err)
	alice, err := svc.Participant.AddParticipant(ctx, event.EventID, dto.CreateParticipantRequest{Name: "Alice"})
	require.NoError(t, err)
	bob, err := svc.Participant.AddParticipant(ctx, event.EventID, dto.CreateParticipantRequest{Name: "Bob"})
	require.NoError(t, err)
	_, err = svc.Ledger.AddTransaction(ctx, event.EventID, dto.CreateTransactionRequest{
		PayerID: alice.ParticipantID, Participants: []string{alice.ParticipantID, bob.ParticipantID}, Amount: 5000,
	})
	require.NoError(t, err)
	return event.Code
}

func TestSummaryCommand(t *testing.T) {
	store := memory.NewStateStore()
	code := seed(t, store)
	useStores(t, config.BackendRedis, map[string]*memory.StateStore{config.BackendRedis: store})

	out, err := run(t, "summary", strings.ToLower(code))
	require.NoError(t, err)
	assert.Contains(t, out, "Cabin weekend ("+code+")")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "Bob pays Alice 25.00")

	_, err = run(t, "summary", "ZZZZZZZZ")
	if code != "ZZZZZZZZ" {
		assert.Error(t, err)
	}
}

func TestEventsCommand(t *testing.T) {
	store := memory.NewStateStore()
	code := seed(t, store)
	useStores(t, config.BackendRedis, map[string]*memory.StateStore{config.BackendRedis: store})

	out, err := run(t, "events")
	require.NoError(t, err)
	assert.Contains(t, out, code)
	assert.Contains(t, out, "Cabin weekend")
}

func TestCopyStateCommand(t *testing.T) {
	src := memory.NewStateStore()
	dst := memory.NewStateStore()
	seed(t, src)
	useStores(t, config.BackendPostgres, map[string]*memory.StateStore{
		config.BackendRedis:    src,
		config.BackendPostgres: dst,
	})

	out, err := run(t, "copy-state", "--from", config.BackendRedis)
	require.NoError(t, err)
	assert.Contains(t, out, "transactions")
	assert.Contains(t, out, "copied")

	for _, name := range storeNames {
		want, err := src.LoadState(context.Background(), name)
		require.NoError(t, err)
		got, err := dst.LoadState(context.Background(), name)
		require.NoError(t, err)
		assert.Equal(t, want, got, name)
	}

	_, err = run(t, "copy-state", "--from", config.BackendPostgres)
	assert.Error(t, err)
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := run(t, "hash-password", "s3cret")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("s3cret", strings.TrimSpace(out)))

	rootCmd.SetIn(strings.NewReader("from-stdin\n"))
	out, err = run(t, "hash-password")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("from-stdin", strings.TrimSpace(out)))
}
