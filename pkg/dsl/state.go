package dsl

import (
	"context"
	"sync"

	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/ports"
)

// StateBuilder provides a fluent API for configuring a state.
type StateBuilder struct {
	state *FuncState
}

// OnLoad sets the function run by Load.
func (s *StateBuilder) OnLoad(fn func(ctx context.Context) error) *StateBuilder {
	s.state.load = fn
	return s
}

// OnUnload sets the function run by Unload.
func (s *StateBuilder) OnUnload(fn func(ctx context.Context) error) *StateBuilder {
	s.state.unload = fn
	return s
}

// OnUpdate sets the per-tick function.
func (s *StateBuilder) OnUpdate(fn func(ctx context.Context, tpf float64)) *StateBuilder {
	s.state.update = fn
	return s
}

// Attach makes the state attach itself to engine while loaded.
func (s *StateBuilder) Attach(engine ports.StateAttacher) *StateBuilder {
	s.state.engine = engine
	return s
}

// Build returns the configured state.
func (s *StateBuilder) Build() *FuncState {
	return s.state
}

// FuncState is a domain.GameState whose hooks are plain functions.
// It enforces the Load/Unload pairing.
type FuncState struct {
	name   string
	load   func(ctx context.Context) error
	unload func(ctx context.Context) error
	update func(ctx context.Context, tpf float64)
	engine ports.StateAttacher

	mu     sync.Mutex
	loaded bool
}

func (s *FuncState) Name() string {
	return s.name
}

func (s *FuncState) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return domain.ErrAlreadyLoaded
	}
	if s.load != nil {
		if err := s.load(ctx); err != nil {
			return err
		}
	}
	if s.engine != nil {
		s.engine.Attach(s)
	}
	s.loaded = true
	return nil
}

func (s *FuncState) Unload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return domain.ErrNotLoaded
	}
	if s.unload != nil {
		if err := s.unload(ctx); err != nil {
			return err
		}
	}
	if s.engine != nil {
		s.engine.Detach(s)
	}
	s.loaded = false
	return nil
}

func (s *FuncState) Update(ctx context.Context, tpf float64) {
	if s.update != nil {
		s.update(ctx, tpf)
	}
}

// Loaded reports whether Load succeeded without a later Unload.
func (s *FuncState) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}
