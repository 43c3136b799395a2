package domain

import (
	"errors"
	"fmt"
)

// ErrStateConflict is matched by every ConflictError.
var ErrStateConflict = errors.New("game state already registered")

// ErrStateNotFound is returned by strict transitions to a name that was never registered.
var ErrStateNotFound = errors.New("game state not found")

// ErrNoActiveState is matched when a failed load left the machine without a current state.
var ErrNoActiveState = errors.New("no active game state")

// ErrInvalidState is returned when registering a nil state or one with an empty name.
var ErrInvalidState = errors.New("invalid game state")

// ErrAlreadyLoaded is returned by states whose Load is called twice.
var ErrAlreadyLoaded = errors.New("game state already loaded")

// ErrNotLoaded is returned by states whose Unload is called without a prior Load.
var ErrNotLoaded = errors.New("game state not loaded")

// ErrNoSavedState is returned by a StateStore that has nothing recorded for an application.
var ErrNoSavedState = errors.New("no saved game state")

// ConflictError reports an attempt to register a name that is already taken.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("game state %q already registered", e.Name)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrStateConflict
}

// LifecycleError wraps a failure raised by a state's own Load or Unload.
// The state's error is reachable through errors.Is and errors.As unchanged.
type LifecycleError struct {
	State string
	Phase Phase
	Err   error
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("game state %q %s failed: %v", e.State, e.Phase, e.Err)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}

// Is reports a load failure as ErrNoActiveState: the previous state was
// already unloaded and the machine holds no current state.
func (e *LifecycleError) Is(target error) bool {
	return target == ErrNoActiveState && e.Phase == PhaseLoad
}

// IsConflict checks if an error reports a duplicate registration.
func IsConflict(err error) bool {
	return errors.Is(err, ErrStateConflict)
}
