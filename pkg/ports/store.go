package ports

import "context"

// StateStore persists the name of the last active state per application.
type StateStore interface {
	// SaveCurrent records name as the active state of app.
	SaveCurrent(ctx context.Context, app string, name string) error

	// LoadCurrent returns the recorded state name.
	// Returns domain.ErrNoSavedState if nothing is recorded for app.
	LoadCurrent(ctx context.Context, app string) (string, error)

	// Clear forgets the recorded state of app.
	Clear(ctx context.Context, app string) error
}
