package stars

import (
	"io"
	"log/slog"

	"github.com/drossy/stars/internal/i18n"
	"github.com/drossy/stars/internal/presentation/tui"
	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/ports"
)

// Option defines a functional option for configuring the Application.
type Option func(*Application)

// WithLogger sets a custom structured logger for the application and its machine.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Application) {
		a.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks on the machine.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Application) {
		a.hooks = hooks
	}
}

// WithEngine injects the engine collaborator states attach to.
// Defaults to a headless memory.Attacher.
func WithEngine(engine ports.StateAttacher) Option {
	return func(a *Application) {
		a.engine = engine
	}
}

// WithStore enables last-state persistence.
func WithStore(store ports.StateStore) Option {
	return func(a *Application) {
		a.store = store
	}
}

// WithName sets the key the application is stored under. Defaults to
// "stars-<side>".
func WithName(name string) Option {
	return func(a *Application) {
		a.name = name
	}
}

// WithTickRate sets the number of update ticks per second.
func WithTickRate(perSecond int) Option {
	return func(a *Application) {
		if perSecond > 0 {
			a.tickRate = perSecond
		}
	}
}

// WithInitialState overrides the state Start transfers to.
func WithInitialState(name string) Option {
	return func(a *Application) {
		a.initial = name
	}
}

// WithStrictLookup makes transfers to unregistered names fail with
// domain.ErrStateNotFound instead of being ignored.
func WithStrictLookup(strict bool) Option {
	return func(a *Application) {
		a.strict = strict
	}
}

// WithScreenOutput sets where client screens are drawn.
func WithScreenOutput(w io.Writer) Option {
	return func(a *Application) {
		a.out = w
	}
}

// WithRenderer sets the markdown renderer for client screens.
func WithRenderer(r tui.Renderer) Option {
	return func(a *Application) {
		a.render = r
	}
}

// WithLocalizer sets the localizer for client captions.
func WithLocalizer(loc *i18n.Localizer) Option {
	return func(a *Application) {
		a.loc = loc
	}
}

// WithStates registers additional states after the built-in ones.
func WithStates(states ...domain.GameState) Option {
	return func(a *Application) {
		a.extra = append(a.extra, states...)
	}
}
