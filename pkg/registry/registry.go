// Package registry holds the game states an application knows about.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/drossy/stars/pkg/domain"
)

// Registry manages the registered game states.
// It is safe for concurrent use: registrations may race with lookups from
// the update goroutine.
type Registry struct {
	mu     sync.RWMutex
	states map[string]domain.GameState
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		states: make(map[string]domain.GameState),
	}
}

// Register adds a state to the registry.
// A name is never overwritten: if it is taken, a *domain.ConflictError is
// returned and the existing entry is left untouched. Registering does not
// load the state.
func (r *Registry) Register(state domain.GameState) error {
	if state == nil {
		return fmt.Errorf("%w: nil state", domain.ErrInvalidState)
	}
	name := state.Name()
	if name == "" {
		return fmt.Errorf("%w: empty name", domain.ErrInvalidState)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.states[name]; exists {
		return &domain.ConflictError{Name: name}
	}
	r.states[name] = state
	return nil
}

// Lookup returns the state registered under name.
func (r *Registry) Lookup(name string) (domain.GameState, bool) {
	r.mu.RLock()
	state, ok := r.states[name]
	r.mu.RUnlock()
	return state, ok
}

// Available returns the names of all registered states.
// The slice is sorted for readable output; callers must not rely on order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.states))
	for name := range r.states {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Len returns the number of registered states.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}
