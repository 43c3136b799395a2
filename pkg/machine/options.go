package machine

import (
	"log/slog"

	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/registry"
)

// DefaultHistorySize is the number of activated state names kept by History.
const DefaultHistorySize = 32

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithRegistry injects an existing registry instead of creating an empty one.
func WithRegistry(r *registry.Registry) Option {
	return func(m *Machine) {
		m.registry = r
	}
}

// WithStrictLookup makes TransferTo return domain.ErrStateNotFound for
// unregistered names instead of logging and doing nothing.
func WithStrictLookup(strict bool) Option {
	return func(m *Machine) {
		m.strict = strict
	}
}

// WithHistorySize bounds the activation history. Zero disables it.
func WithHistorySize(n int) Option {
	return func(m *Machine) {
		if n >= 0 {
			m.historySize = n
		}
	}
}
