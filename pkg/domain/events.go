package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventStateRegistered  EventType = "state_registered"
	EventStateLoad        EventType = "state_load"
	EventStateUnload      EventType = "state_unload"
	EventTransition       EventType = "transition"
	EventTransitionFailed EventType = "transition_failed"
	EventLookupMiss       EventType = "lookup_miss"
)

// StateEvent describes a single lifecycle call or registration.
type StateEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	State     string        `json:"state"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// TransitionEvent describes a whole transition. From is empty when no state was current.
type TransitionEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	Phase     Phase         `json:"phase,omitempty"`
	Duration  time.Duration `json:"duration"`
	Err       error         `json:"-"`
}

// LifecycleHooks defines callbacks for state manager observability.
// Hooks run synchronously on the goroutine performing the operation.
type LifecycleHooks struct {
	OnRegister         func(context.Context, *StateEvent)
	OnLoad             func(context.Context, *StateEvent)
	OnUnload           func(context.Context, *StateEvent)
	OnTransition       func(context.Context, *TransitionEvent)
	OnTransitionFailed func(context.Context, *TransitionEvent)
	OnLookupMiss       func(context.Context, *TransitionEvent)
}
