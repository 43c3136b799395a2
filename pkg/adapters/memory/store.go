package memory

import (
	"context"
	"sync"

	"github.com/drossy/stars/pkg/domain"
)

// Store implements ports.StateStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]string
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// SaveCurrent records name as the active state of app.
func (s *Store) SaveCurrent(ctx context.Context, app string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[app] = name
	return nil
}

// LoadCurrent returns the recorded state name of app.
func (s *Store) LoadCurrent(ctx context.Context, app string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, ok := s.data[app]
	if !ok {
		return "", domain.ErrNoSavedState
	}
	return name, nil
}

// Clear forgets the recorded state of app.
func (s *Store) Clear(ctx context.Context, app string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, app)
	return nil
}
