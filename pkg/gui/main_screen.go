package gui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/drossy/stars/internal/presentation/tui"
)

// MainScreenName identifies the main menu screen.
const MainScreenName = "MainScreen"

// MainScreen lists the menu buttons. It belongs to the state named by home
// and asks the navigator to return there when shown from elsewhere.
type MainScreen struct {
	home   string
	nav    Navigator
	out    io.Writer
	render tui.Renderer
	title  string
	footer string

	mu      sync.Mutex
	buttons []Button
	frame   string
}

// ScreenOption configures a MainScreen.
type ScreenOption func(*MainScreen)

// WithOutput sets where Show writes the rendered screen.
func WithOutput(w io.Writer) ScreenOption {
	return func(s *MainScreen) {
		s.out = w
	}
}

// WithRenderer replaces the markdown renderer.
func WithRenderer(r tui.Renderer) ScreenOption {
	return func(s *MainScreen) {
		s.render = r
	}
}

// WithTitle sets the heading.
func WithTitle(title string) ScreenOption {
	return func(s *MainScreen) {
		s.title = title
	}
}

// WithFooter sets a line printed under the buttons.
func WithFooter(footer string) ScreenOption {
	return func(s *MainScreen) {
		s.footer = footer
	}
}

// NewMainScreen creates an empty main screen owned by the home state.
func NewMainScreen(home string, nav Navigator, opts ...ScreenOption) *MainScreen {
	s := &MainScreen{
		home:  home,
		nav:   nav,
		out:   io.Discard,
		title: "Main menu",
	}
	for _, opt := range opts {
		opt(s)
	}
	_ = s.Rebuild()
	return s
}

func (s *MainScreen) Name() string {
	return MainScreenName
}

// AddButton appends a button and rebuilds the screen.
func (s *MainScreen) AddButton(b Button) error {
	s.mu.Lock()
	s.buttons = append(s.buttons, b)
	s.mu.Unlock()
	return s.Rebuild()
}

// Button returns the first button with the given name.
func (s *MainScreen) Button(name string) (Button, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.buttons {
		if b.Name == name {
			return b, true
		}
	}
	return Button{}, false
}

// Buttons returns the buttons in display order.
func (s *MainScreen) Buttons() []Button {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Button, len(s.buttons))
	copy(out, s.buttons)
	return out
}

// Press applies the named button. It reports false for unknown names.
func (s *MainScreen) Press(ctx context.Context, name string) bool {
	b, ok := s.Button(name)
	if !ok {
		return false
	}
	if b.Apply != nil {
		b.Apply(ctx)
	}
	return true
}

// Show writes the last built frame, then requests a transfer to the home
// state if another state is current.
func (s *MainScreen) Show(ctx context.Context) error {
	s.mu.Lock()
	frame := s.frame
	s.mu.Unlock()
	if _, err := io.WriteString(s.out, frame); err != nil {
		return fmt.Errorf("failed to show %s: %w", MainScreenName, err)
	}
	if s.nav != nil && s.nav.CurrentName() != s.home {
		s.nav.RequestTransfer(s.home)
	}
	return nil
}

// Rebuild renders the current buttons into a new frame.
func (s *MainScreen) Rebuild() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	md := s.markdown()
	if s.render == nil {
		s.frame = md
		return nil
	}
	frame, err := s.render(md)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", MainScreenName, err)
	}
	s.frame = frame
	return nil
}

// Frame returns the last built frame.
func (s *MainScreen) Frame() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

func (s *MainScreen) markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", s.title)
	for i, b := range s.buttons {
		fmt.Fprintf(&sb, "%d. **%s** `%s`\n", i+1, b.Caption, b.Name)
	}
	if s.footer != "" {
		fmt.Fprintf(&sb, "\n_%s_\n", s.footer)
	}
	return sb.String()
}
