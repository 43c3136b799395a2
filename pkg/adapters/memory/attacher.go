// Package memory provides in-process adapters for headless runs and tests.
package memory

import (
	"sort"
	"sync"

	"github.com/drossy/stars/pkg/domain"
)

// Attacher implements ports.StateAttacher without an engine behind it.
// It only tracks which states are attached, which is all a dedicated
// server needs.
type Attacher struct {
	mu       sync.Mutex
	attached map[string]domain.GameState
}

// NewAttacher creates an empty attacher.
func NewAttacher() *Attacher {
	return &Attacher{
		attached: make(map[string]domain.GameState),
	}
}

func (a *Attacher) Attach(state domain.GameState) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.attached[state.Name()]; ok {
		return false
	}
	a.attached[state.Name()] = state
	return true
}

func (a *Attacher) Detach(state domain.GameState) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.attached[state.Name()]; !ok {
		return false
	}
	delete(a.attached, state.Name())
	return true
}

func (a *Attacher) IsAttached(state domain.GameState) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.attached[state.Name()]
	return ok
}

// Attached returns the names of the attached states, sorted.
func (a *Attacher) Attached() []string {
	a.mu.Lock()
	names := make([]string, 0, len(a.attached))
	for name := range a.attached {
		names = append(names, name)
	}
	a.mu.Unlock()
	sort.Strings(names)
	return names
}
