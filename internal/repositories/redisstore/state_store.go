package redisstore

import (
	"context"
	"errors"
	"fmt"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// StateStore saves each named store as one Redis string under keyPrefix:storeName.
type StateStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

var _ portsrepo.StateStore = (*StateStore)(nil)

// Options configures the Redis connection.
type Options struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*StateStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis at %s: %w", opts.Addr, err)
	}
	return NewWithClient(client, opts.KeyPrefix), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client redis.UniversalClient, keyPrefix string) *StateStore {
	return &StateStore{client: client, keyPrefix: keyPrefix}
}

func (s *StateStore) key(storeName string) string {
	if s.keyPrefix == "" {
		return storeName
	}
	return s.keyPrefix + ":" + storeName
}

func (s *StateStore) LoadState(ctx context.Context, storeName string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(storeName)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", storeName, err)
	}
	return data, nil
}

func (s *StateStore) SaveState(ctx context.Context, storeName string, state []byte) error {
	if err := s.client.Set(ctx, s.key(storeName), state, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", storeName, err)
	}
	return nil
}

// Close closes the underlying client.
func (s *StateStore) Close(_ context.Context) error {
	return s.client.Close()
}
