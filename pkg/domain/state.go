package domain

import "context"

// GameState is a named, mutually-exclusive mode of the running application.
// A client usually has several of them (main menu, in-game, editor) while a
// dedicated server runs a single main state. Only one state is active at a
// time; the machine enforces that, not the state.
type GameState interface {
	// Name identifies the state. It must be non-empty and stable.
	Name() string

	// Load activates the state. Calling Load twice without Unload in
	// between is a precondition violation.
	Load(ctx context.Context) error

	// Unload deactivates the state and must release everything Load acquired.
	Unload(ctx context.Context) error
}

// Updater is implemented by states that want a per-frame tick while current.
type Updater interface {
	Update(ctx context.Context, tpf float64)
}

// Phase names the lifecycle hook that was running when something happened.
type Phase string

const (
	PhaseLoad   Phase = "load"
	PhaseUnload Phase = "unload"
)
