package states

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/drossy/stars/internal/i18n"
	"github.com/drossy/stars/internal/logging"
	"github.com/drossy/stars/internal/presentation/tui"
	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/gui"
	"github.com/drossy/stars/pkg/ports"
)

// MainMenuName is the registered name of the client main menu.
const MainMenuName = "mainMenu"

// QuitButton is the name of the button that stops the application.
const QuitButton = "quitButton"

// MainMenu is the first state a client shows. While loaded it owns a
// MainScreen with a button per other registered state and a Quit button.
type MainMenu struct {
	host   Host
	engine ports.StateAttacher
	loc    *i18n.Localizer
	out    io.Writer
	render tui.Renderer
	logger *slog.Logger

	mu     sync.Mutex
	loaded bool
	screen *gui.MainScreen
}

// MenuOption configures a MainMenu.
type MenuOption func(*MainMenu)

// WithMenuOutput sets where the menu screen is written.
func WithMenuOutput(w io.Writer) MenuOption {
	return func(m *MainMenu) {
		m.out = w
	}
}

// WithMenuRenderer sets the markdown renderer of the menu screen.
func WithMenuRenderer(r tui.Renderer) MenuOption {
	return func(m *MainMenu) {
		m.render = r
	}
}

// WithMenuLocalizer sets the localizer for captions.
func WithMenuLocalizer(loc *i18n.Localizer) MenuOption {
	return func(m *MainMenu) {
		m.loc = loc
	}
}

// WithMenuLogger sets the logger.
func WithMenuLogger(logger *slog.Logger) MenuOption {
	return func(m *MainMenu) {
		m.logger = logger
	}
}

// NewMainMenu creates the main menu state.
func NewMainMenu(host Host, engine ports.StateAttacher, opts ...MenuOption) *MainMenu {
	m := &MainMenu{
		host:   host,
		engine: engine,
		out:    io.Discard,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.loc == nil {
		m.loc = i18n.Default("")
	}
	return m
}

func (m *MainMenu) Name() string {
	return MainMenuName
}

// Load attaches the menu to the engine, builds the screen and draws it.
func (m *MainMenu) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loaded {
		return fmt.Errorf("%s: %w", MainMenuName, domain.ErrAlreadyLoaded)
	}
	if !m.engine.Attach(m) {
		return fmt.Errorf("%s already attached to engine: %w", MainMenuName, domain.ErrAlreadyLoaded)
	}

	screen, err := m.buildScreen()
	if err != nil {
		m.engine.Detach(m)
		return err
	}
	if _, err := io.WriteString(m.out, screen.Frame()); err != nil {
		m.engine.Detach(m)
		return fmt.Errorf("failed to draw %s: %w", MainMenuName, err)
	}

	m.screen = screen
	m.loaded = true
	m.logger.Debug("main menu loaded", "buttons", len(screen.Buttons()))
	return nil
}

// Unload detaches the menu and drops its screen.
func (m *MainMenu) Unload(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		return fmt.Errorf("%s: %w", MainMenuName, domain.ErrNotLoaded)
	}
	m.engine.Detach(m)
	m.screen = nil
	m.loaded = false
	return nil
}

// Screen returns the menu screen while loaded, nil otherwise.
func (m *MainMenu) Screen() *gui.MainScreen {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.screen
}

// Quit stops the application.
func (m *MainMenu) Quit() {
	m.logger.Info("quit requested from main menu")
	m.host.Stop()
}

func (m *MainMenu) buildScreen() (*gui.MainScreen, error) {
	screen := gui.NewMainScreen(MainMenuName, m.host,
		gui.WithOutput(m.out),
		gui.WithRenderer(m.render),
		gui.WithTitle(m.loc.T(i18n.MsgMenuTitle, nil)),
	)

	for _, name := range m.host.Available() {
		if name == MainMenuName {
			continue
		}
		target := name
		err := screen.AddButton(gui.Button{
			Name:    target + "Button",
			Caption: m.loc.T(i18n.MsgMenuGoto, map[string]any{"State": target}),
			Apply: func(context.Context) {
				m.host.RequestTransfer(target)
			},
		})
		if err != nil {
			return nil, err
		}
	}

	err := screen.AddButton(gui.Button{
		Name:    QuitButton,
		Caption: m.loc.T(i18n.MsgMenuQuit, nil),
		Apply: func(context.Context) {
			m.Quit()
		},
	})
	if err != nil {
		return nil, err
	}
	return screen, nil
}
