package dsl

import (
	"fmt"
	"sort"

	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/registry"
)

// Builder collects state definitions.
type Builder struct {
	states map[string]*StateBuilder
}

// New creates a new state builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// Add starts a state definition.
// If the name was already added, it returns the existing builder.
func (b *Builder) Add(name string) *StateBuilder {
	if sb, ok := b.states[name]; ok {
		return sb
	}
	sb := &StateBuilder{state: &FuncState{name: name}}
	b.states[name] = sb
	return sb
}

// States returns the built states sorted by name.
func (b *Builder) States() []domain.GameState {
	names := make([]string, 0, len(b.states))
	for name := range b.states {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]domain.GameState, 0, len(names))
	for _, name := range names {
		out = append(out, b.states[name].Build())
	}
	return out
}

// Build registers every state into a fresh registry.
func (b *Builder) Build() (*registry.Registry, error) {
	reg := registry.NewRegistry()
	for _, s := range b.States() {
		if err := reg.Register(s); err != nil {
			return nil, fmt.Errorf("failed to build registry: %w", err)
		}
	}
	return reg, nil
}
