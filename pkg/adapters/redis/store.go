// Package redis persists the last active game state in Redis so a restarted
// process can resume where it left off.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/drossy/stars/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix is prepended to every key written by the store.
const DefaultPrefix = "stars:state:"

// Store implements ports.StateStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration of saved records. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// record is the JSON value stored per application.
type record struct {
	State   string    `json:"state"`
	SavedAt time.Time `json:"saved_at"`
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(app string) string {
	return s.prefix + app
}

// SaveCurrent records name as the active state of app.
func (s *Store) SaveCurrent(ctx context.Context, app string, name string) error {
	data, err := json.Marshal(record{State: name, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal state record: %w", err)
	}
	if err := s.client.Set(ctx, s.key(app), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// LoadCurrent returns the recorded state name of app.
func (s *Store) LoadCurrent(ctx context.Context, app string) (string, error) {
	val, err := s.client.Get(ctx, s.key(app)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return "", domain.ErrNoSavedState
		}
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}

	var rec record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return "", fmt.Errorf("failed to unmarshal state record: %w", err)
	}
	if rec.State == "" {
		return "", domain.ErrNoSavedState
	}
	return rec.State, nil
}

// Clear forgets the recorded state of app.
func (s *Store) Clear(ctx context.Context, app string) error {
	return s.client.Del(ctx, s.key(app)).Err()
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
