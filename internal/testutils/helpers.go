package testutils

import (
	"context"
	"fmt"
	"sync"

	"github.com/drossy/stars/pkg/domain"
	"go.uber.org/atomic"
)

// Recorder collects lifecycle calls from FakeStates sharing it, each tagged
// with a global sequence number.
type Recorder struct {
	seq atomic.Int64

	mu    sync.Mutex
	calls []Call
}

// Call is one recorded Load or Unload.
type Call struct {
	Seq   int64
	State string
	Phase domain.Phase
}

func (r *Recorder) record(state string, phase domain.Phase) int64 {
	n := r.seq.Inc()
	r.mu.Lock()
	r.calls = append(r.calls, Call{Seq: n, State: state, Phase: phase})
	r.mu.Unlock()
	return n
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Trace renders the calls as "name:phase" strings.
func (r *Recorder) Trace() []string {
	calls := r.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = fmt.Sprintf("%s:%s", c.State, c.Phase)
	}
	return out
}

// FakeState is an instrumented domain.GameState for tests.
type FakeState struct {
	StateName string
	Recorder  *Recorder

	// LoadErr and UnloadErr are returned by the corresponding hook when set.
	LoadErr   error
	UnloadErr error

	// LoadFunc runs inside Load before it returns, e.g. to block.
	LoadFunc func(ctx context.Context)

	mu         sync.Mutex
	loaded     bool
	LastLoad   int64
	LastUnload int64
	Ticks      int
}

// NewFakeState creates a FakeState recording into rec (may be nil).
func NewFakeState(name string, rec *Recorder) *FakeState {
	if rec == nil {
		rec = &Recorder{}
	}
	return &FakeState{StateName: name, Recorder: rec}
}

func (s *FakeState) Name() string { return s.StateName }

func (s *FakeState) Load(ctx context.Context) error {
	if s.LoadFunc != nil {
		s.LoadFunc(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return s.LoadErr
	}
	if s.loaded {
		return domain.ErrAlreadyLoaded
	}
	s.loaded = true
	s.LastLoad = s.Recorder.record(s.StateName, domain.PhaseLoad)
	return nil
}

func (s *FakeState) Unload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.UnloadErr != nil {
		return s.UnloadErr
	}
	if !s.loaded {
		return domain.ErrNotLoaded
	}
	s.loaded = false
	s.LastUnload = s.Recorder.record(s.StateName, domain.PhaseUnload)
	return nil
}

func (s *FakeState) Update(ctx context.Context, tpf float64) {
	s.mu.Lock()
	s.Ticks++
	s.mu.Unlock()
}

// Loaded reports whether the state is currently loaded.
func (s *FakeState) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// TickCount returns the number of Update calls received.
func (s *FakeState) TickCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Ticks
}
