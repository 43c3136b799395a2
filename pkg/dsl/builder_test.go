package dsl

import (
	"context"
	"errors"
	"testing"

	"github.com/drossy/stars/pkg/adapters/memory"
	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/machine"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	var trace []string
	b := New()

	b.Add("lobby").
		OnLoad(func(ctx context.Context) error { trace = append(trace, "lobby:load"); return nil }).
		OnUnload(func(ctx context.Context) error { trace = append(trace, "lobby:unload"); return nil })

	ticks := 0
	b.Add("arena").
		OnLoad(func(ctx context.Context) error { trace = append(trace, "arena:load"); return nil }).
		OnUpdate(func(ctx context.Context, tpf float64) { ticks++ })

	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if got := reg.Available(); len(got) != 2 || got[0] != "arena" || got[1] != "lobby" {
		t.Fatalf("unexpected states: %v", got)
	}

	m := machine.New(machine.WithRegistry(reg))
	ctx := context.Background()
	if err := m.TransferTo(ctx, "lobby"); err != nil {
		t.Fatalf("TransferTo(lobby) failed: %v", err)
	}
	if err := m.TransferTo(ctx, "arena"); err != nil {
		t.Fatalf("TransferTo(arena) failed: %v", err)
	}
	m.Update(ctx, 0.016)

	want := []string{"lobby:load", "lobby:unload", "arena:load"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Errorf("trace[%d] = %q, want %q", i, trace[i], want[i])
		}
	}
	if ticks != 1 {
		t.Errorf("expected 1 tick, got %d", ticks)
	}
}

func TestBuilder_AddIsIdempotent(t *testing.T) {
	b := New()
	first := b.Add("lobby")
	if b.Add("lobby") != first {
		t.Error("Add should return the existing builder for a known name")
	}
	if len(b.States()) != 1 {
		t.Errorf("expected 1 state, got %d", len(b.States()))
	}
}

func TestBuilder_EmptyNameFails(t *testing.T) {
	b := New()
	b.Add("")
	if _, err := b.Build(); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestFuncState_Pairing(t *testing.T) {
	engine := memory.NewAttacher()
	s := New().Add("arena").Attach(engine).Build()
	ctx := context.Background()

	if err := s.Unload(ctx); !errors.Is(err, domain.ErrNotLoaded) {
		t.Errorf("Unload before Load: got %v", err)
	}
	if err := s.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !engine.IsAttached(s) {
		t.Error("state should be attached while loaded")
	}
	if err := s.Load(ctx); !errors.Is(err, domain.ErrAlreadyLoaded) {
		t.Errorf("double Load: got %v", err)
	}
	if err := s.Unload(ctx); err != nil {
		t.Fatalf("Unload failed: %v", err)
	}
	if engine.IsAttached(s) || s.Loaded() {
		t.Error("state should be detached and unloaded")
	}
}

func TestFuncState_LoadErrorKeepsUnloaded(t *testing.T) {
	boom := errors.New("boom")
	s := New().Add("broken").OnLoad(func(context.Context) error { return boom }).Build()

	if err := s.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s.Loaded() {
		t.Error("failed Load must not mark the state loaded")
	}
}
