package stars

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/drossy/stars/internal/i18n"
	"github.com/drossy/stars/internal/logging"
	"github.com/drossy/stars/internal/presentation/tui"
	"github.com/drossy/stars/pkg/adapters/memory"
	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/gui"
	"github.com/drossy/stars/pkg/machine"
	"github.com/drossy/stars/pkg/ports"
	"github.com/drossy/stars/pkg/states"
	"go.uber.org/atomic"
)

// DefaultTickRate is the number of update ticks per second.
const DefaultTickRate = 60

// ErrAlreadyRunning is returned by Run when the update loop is already active.
var ErrAlreadyRunning = errors.New("application already running")

// Application is a client or server instance of the game. It owns the state
// machine and the update loop that drives it.
type Application struct {
	side     domain.Side
	name     string
	machine  *machine.Machine
	engine   ports.StateAttacher
	store    ports.StateStore
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	tickRate int
	initial  string
	strict   bool
	out      io.Writer
	render   tui.Renderer
	loc      *i18n.Localizer
	extra    []domain.GameState

	menu   *states.MainMenu
	server *states.ServerMain

	queueMu sync.Mutex
	queue   []string

	running  *atomic.Bool
	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New builds the application variant for side and registers its states.
// An unknown side starts a client. A name conflict among the states aborts
// construction.
func New(side domain.Side, opts ...Option) (*Application, error) {
	a := &Application{
		side:     domain.ResolveSide(side),
		logger:   logging.NewNop(),
		tickRate: DefaultTickRate,
		out:      io.Discard,
		running:  atomic.NewBool(false),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.name == "" {
		a.name = "stars-" + a.side.String()
	}
	if a.engine == nil {
		a.engine = memory.NewAttacher()
	}

	a.machine = machine.New(
		machine.WithLogger(a.logger),
		machine.WithLifecycleHooks(a.hooks),
		machine.WithStrictLookup(a.strict),
	)

	if err := a.setup(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Application) setup() error {
	var builtin domain.GameState
	if a.side.IsServer() {
		a.server = states.NewServerMain(a.engine)
		builtin = a.server
	} else {
		menuOpts := []states.MenuOption{
			states.WithMenuOutput(a.out),
			states.WithMenuRenderer(a.render),
			states.WithMenuLogger(a.logger),
		}
		if a.loc != nil {
			menuOpts = append(menuOpts, states.WithMenuLocalizer(a.loc))
		}
		a.menu = states.NewMainMenu(a, a.engine, menuOpts...)
		builtin = a.menu
	}

	for _, s := range append([]domain.GameState{builtin}, a.extra...) {
		if err := a.machine.RegisterState(s); err != nil {
			return fmt.Errorf("failed to set up %s application: %w", a.side, err)
		}
	}
	return nil
}

// Side returns the side this application runs as.
func (a *Application) Side() domain.Side {
	return a.side
}

// Name returns the key used for last-state persistence.
func (a *Application) Name() string {
	return a.name
}

// Machine exposes the underlying state machine.
func (a *Application) Machine() *machine.Machine {
	return a.machine
}

// Available lists the registered state names.
func (a *Application) Available() []string {
	return a.machine.Available()
}

// CurrentName returns the active state name, or "".
func (a *Application) CurrentName() string {
	return a.machine.CurrentName()
}

// History returns the most recently activated state names, oldest first.
func (a *Application) History() []string {
	return a.machine.History()
}

// DefaultState returns the state Start falls back to for this side.
func (a *Application) DefaultState() string {
	if a.side.IsServer() {
		return states.ServerMainName
	}
	return states.MainMenuName
}

// Screen returns the main menu screen while it is shown, nil otherwise.
func (a *Application) Screen() *gui.MainScreen {
	if a.menu == nil {
		return nil
	}
	return a.menu.Screen()
}

// Start moves the machine to its first state: the persisted one if a store
// knows a registered name, else the configured initial state, else the
// side default.
func (a *Application) Start(ctx context.Context) error {
	target := a.initial
	if target == "" {
		target = a.DefaultState()
	}
	if saved := a.restore(ctx); saved != "" {
		target = saved
	}
	a.logger.Info("starting application", "side", a.side, "state", target)
	return a.TransferTo(ctx, target)
}

// TransferTo synchronously transfers to name and persists the result.
// While Run is active only the update goroutine may call it; use
// RequestTransfer elsewhere.
func (a *Application) TransferTo(ctx context.Context, name string) error {
	if err := a.machine.TransferTo(ctx, name); err != nil {
		return err
	}
	if a.store != nil && a.machine.CurrentName() == name {
		if err := a.store.SaveCurrent(ctx, a.name, name); err != nil {
			a.logger.Warn("failed to persist current state", "state", name, "error", err)
		}
	}
	return nil
}

// RequestTransfer queues a transfer for the next tick. Safe for concurrent use.
func (a *Application) RequestTransfer(name string) {
	a.queueMu.Lock()
	a.queue = append(a.queue, name)
	a.queueMu.Unlock()
}

// Pending returns the number of queued transfer requests.
func (a *Application) Pending() int {
	a.queueMu.Lock()
	defer a.queueMu.Unlock()
	return len(a.queue)
}

// Run is the update loop. Each tick applies queued transfers in order and
// then updates the current state. It returns after ctx is cancelled or Stop
// is called, once the current state has been unloaded.
func (a *Application) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(a.done)

	interval := time.Second / time.Duration(a.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	a.logger.Debug("update loop started", "tick", interval)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return a.shutdown(context.WithoutCancel(ctx))
		case <-a.stop:
			return a.shutdown(ctx)
		case now := <-ticker.C:
			a.tick(ctx, now.Sub(last).Seconds())
			last = now
		}
	}
}

// Stop asks Run to return. Safe to call more than once and from any goroutine.
func (a *Application) Stop() {
	a.stopOnce.Do(func() {
		close(a.stop)
	})
}

// Done is closed when Run has returned.
func (a *Application) Done() <-chan struct{} {
	return a.done
}

func (a *Application) tick(ctx context.Context, tpf float64) {
	for _, name := range a.drain() {
		if err := a.TransferTo(ctx, name); err != nil {
			a.logger.Error("requested transfer failed", "state", name, "error", err)
		}
	}
	a.machine.Update(ctx, tpf)
}

func (a *Application) drain() []string {
	a.queueMu.Lock()
	defer a.queueMu.Unlock()
	pending := a.queue
	a.queue = nil
	return pending
}

func (a *Application) shutdown(ctx context.Context) error {
	err := a.machine.Shutdown(ctx)
	if err != nil {
		a.logger.Error("failed to unload state on shutdown", "error", err)
	}
	a.logger.Info("application stopped", "side", a.side, "transitions", a.machine.Transitions())
	return err
}

func (a *Application) restore(ctx context.Context) string {
	if a.store == nil {
		return ""
	}
	saved, err := a.store.LoadCurrent(ctx, a.name)
	if err != nil {
		if !errors.Is(err, domain.ErrNoSavedState) {
			a.logger.Warn("failed to read saved state", "error", err)
		}
		return ""
	}
	if _, ok := a.machine.Lookup(saved); !ok {
		a.logger.Warn("saved state is not registered", "state", saved)
		return ""
	}
	return saved
}
