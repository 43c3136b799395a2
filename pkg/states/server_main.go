package states

import (
	"context"
	"fmt"
	"sync"

	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/ports"
	"go.uber.org/atomic"
)

// ServerMainName is the registered name of the dedicated server state.
const ServerMainName = "mainState"

// ServerMain is the state a dedicated server runs permanently.
type ServerMain struct {
	engine ports.StateAttacher

	mu     sync.Mutex
	loaded bool

	ticks   *atomic.Int64
	elapsed *atomic.Float64
}

// NewServerMain creates the server main state.
func NewServerMain(engine ports.StateAttacher) *ServerMain {
	return &ServerMain{
		engine:  engine,
		ticks:   atomic.NewInt64(0),
		elapsed: atomic.NewFloat64(0),
	}
}

func (s *ServerMain) Name() string {
	return ServerMainName
}

func (s *ServerMain) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded || !s.engine.Attach(s) {
		return fmt.Errorf("%s: %w", ServerMainName, domain.ErrAlreadyLoaded)
	}
	s.loaded = true
	return nil
}

func (s *ServerMain) Unload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return fmt.Errorf("%s: %w", ServerMainName, domain.ErrNotLoaded)
	}
	s.engine.Detach(s)
	s.loaded = false
	return nil
}

// Update counts simulation ticks.
func (s *ServerMain) Update(ctx context.Context, tpf float64) {
	s.ticks.Inc()
	s.elapsed.Add(tpf)
}

// Ticks returns the number of updates received.
func (s *ServerMain) Ticks() int64 {
	return s.ticks.Load()
}

// Elapsed returns the simulated time in seconds.
func (s *ServerMain) Elapsed() float64 {
	return s.elapsed.Load()
}
