package machine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/drossy/stars/internal/logging"
	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/registry"
	"go.uber.org/atomic"
)

// slot boxes the current state so a nil interface can be published atomically.
type slot struct {
	state domain.GameState
}

// Machine holds at most one current game state and moves the application
// between registered states.
type Machine struct {
	registry *registry.Registry
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	strict   bool

	// mu serialises whole transitions so two TransferTo calls never
	// interleave their unload and load calls.
	mu      sync.Mutex
	current *atomic.Pointer[slot]

	transitions *atomic.Int64

	historyMu   sync.Mutex
	history     []string
	historySize int
}

// New creates a machine with no current state.
func New(opts ...Option) *Machine {
	m := &Machine{
		logger:      logging.NewNop(),
		current:     atomic.NewPointer[slot](nil),
		transitions: atomic.NewInt64(0),
		historySize: DefaultHistorySize,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = registry.NewRegistry()
	}
	return m
}

// Current returns the active state, or nil if none is active yet.
func (m *Machine) Current() domain.GameState {
	if s := m.current.Load(); s != nil {
		return s.state
	}
	return nil
}

// CurrentName returns the name of the active state, or "" if none.
func (m *Machine) CurrentName() string {
	if cur := m.Current(); cur != nil {
		return cur.Name()
	}
	return ""
}

// RegisterState adds a state to the registry. A duplicate name yields a
// *domain.ConflictError which the caller may ignore or treat as fatal.
func (m *Machine) RegisterState(state domain.GameState) error {
	if err := m.registry.Register(state); err != nil {
		return err
	}
	m.logger.Debug("game state registered", "state", state.Name())
	if m.hooks.OnRegister != nil {
		m.hooks.OnRegister(context.Background(), &domain.StateEvent{
			Timestamp: time.Now(),
			Type:      domain.EventStateRegistered,
			State:     state.Name(),
		})
	}
	return nil
}

// Available returns the names of all registered states in no guaranteed order.
func (m *Machine) Available() []string {
	return m.registry.Available()
}

// Lookup returns the registered state with the given name.
func (m *Machine) Lookup(name string) (domain.GameState, bool) {
	return m.registry.Lookup(name)
}

// Registry returns the underlying registry.
func (m *Machine) Registry() *registry.Registry {
	return m.registry
}

// TransferTo moves the application to the named state.
//
// An unregistered name leaves the current state untouched. By default this
// is logged and nil is returned; with WithStrictLookup the error matches
// domain.ErrStateNotFound.
//
// Transferring to the state that is already current unloads and reloads it.
//
// Otherwise the current state (if any) is unloaded to completion, then the
// target is loaded and published as current. Lifecycle failures come back as
// *domain.LifecycleError without retry or rollback:
//   - Unload failed: the old state stays current and the target is not loaded.
//   - Load failed: no state is current; the error matches domain.ErrNoActiveState.
func (m *Machine) TransferTo(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := time.Now()
	from := m.Current()
	fromName := ""
	if from != nil {
		fromName = from.Name()
	}

	target, ok := m.registry.Lookup(name)
	if !ok {
		m.logger.Warn("transfer to unknown game state ignored", "state", name, "current", fromName)
		if m.hooks.OnLookupMiss != nil {
			m.hooks.OnLookupMiss(ctx, &domain.TransitionEvent{
				Timestamp: start,
				Type:      domain.EventLookupMiss,
				From:      fromName,
				To:        name,
			})
		}
		if m.strict {
			return fmt.Errorf("transfer to %q: %w", name, domain.ErrStateNotFound)
		}
		return nil
	}

	if from != nil {
		if err := m.unload(ctx, from); err != nil {
			m.fail(ctx, fromName, name, domain.PhaseUnload, start, err)
			return err
		}
	}

	if err := m.load(ctx, target); err != nil {
		// The old state is gone and the new one did not come up.
		m.current.Store(nil)
		m.fail(ctx, fromName, name, domain.PhaseLoad, start, err)
		return err
	}

	m.current.Store(&slot{state: target})
	m.transitions.Inc()
	m.remember(name)

	m.logger.Info("game state transition", "from", fromName, "to", name)
	if m.hooks.OnTransition != nil {
		m.hooks.OnTransition(ctx, &domain.TransitionEvent{
			Timestamp: time.Now(),
			Type:      domain.EventTransition,
			From:      fromName,
			To:        name,
			Duration:  time.Since(start),
		})
	}
	return nil
}

// Update forwards a frame tick to the current state if it wants one.
func (m *Machine) Update(ctx context.Context, tpf float64) {
	if u, ok := m.Current().(domain.Updater); ok {
		u.Update(ctx, tpf)
	}
}

// Shutdown unloads the current state, if any, and leaves the machine empty.
func (m *Machine) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.Current()
	if cur == nil {
		return nil
	}
	err := m.unload(ctx, cur)
	m.current.Store(nil)
	if err != nil {
		return err
	}
	m.logger.Info("game state machine shut down", "last", cur.Name())
	return nil
}

// Transitions returns the number of successful transitions.
func (m *Machine) Transitions() int64 {
	return m.transitions.Load()
}

// History returns the most recently activated state names, oldest first.
func (m *Machine) History() []string {
	m.historyMu.Lock()
	defer m.historyMu.Unlock()
	out := make([]string, len(m.history))
	copy(out, m.history)
	return out
}

func (m *Machine) unload(ctx context.Context, state domain.GameState) error {
	start := time.Now()
	if err := state.Unload(ctx); err != nil {
		return &domain.LifecycleError{State: state.Name(), Phase: domain.PhaseUnload, Err: err}
	}
	if m.hooks.OnUnload != nil {
		m.hooks.OnUnload(ctx, &domain.StateEvent{
			Timestamp: time.Now(),
			Type:      domain.EventStateUnload,
			State:     state.Name(),
			Duration:  time.Since(start),
		})
	}
	return nil
}

func (m *Machine) load(ctx context.Context, state domain.GameState) error {
	start := time.Now()
	if err := state.Load(ctx); err != nil {
		return &domain.LifecycleError{State: state.Name(), Phase: domain.PhaseLoad, Err: err}
	}
	if m.hooks.OnLoad != nil {
		m.hooks.OnLoad(ctx, &domain.StateEvent{
			Timestamp: time.Now(),
			Type:      domain.EventStateLoad,
			State:     state.Name(),
			Duration:  time.Since(start),
		})
	}
	return nil
}

func (m *Machine) fail(ctx context.Context, from, to string, phase domain.Phase, start time.Time, err error) {
	m.logger.Error("game state transition failed",
		"from", from,
		"to", to,
		"phase", phase,
		"error", err,
	)
	if m.hooks.OnTransitionFailed != nil {
		m.hooks.OnTransitionFailed(ctx, &domain.TransitionEvent{
			Timestamp: time.Now(),
			Type:      domain.EventTransitionFailed,
			From:      from,
			To:        to,
			Phase:     phase,
			Duration:  time.Since(start),
			Err:       err,
		})
	}
}

func (m *Machine) remember(name string) {
	if m.historySize == 0 {
		return
	}
	m.historyMu.Lock()
	defer m.historyMu.Unlock()
	m.history = append(m.history, name)
	if over := len(m.history) - m.historySize; over > 0 {
		m.history = append(m.history[:0], m.history[over:]...)
	}
}
