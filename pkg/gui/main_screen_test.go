package gui_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/drossy/stars/internal/presentation/tui"
	"github.com/drossy/stars/pkg/gui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNav struct {
	current   string
	requested []string
}

func (n *fakeNav) CurrentName() string         { return n.current }
func (n *fakeNav) RequestTransfer(name string) { n.requested = append(n.requested, name) }

func TestMainScreen_AddAndPress(t *testing.T) {
	s := gui.NewMainScreen("mainMenu", nil)
	assert.Equal(t, gui.MainScreenName, s.Name())

	pressed := 0
	require.NoError(t, s.AddButton(gui.Button{
		Name:    "quitButton",
		Caption: "Quit",
		Apply:   func(context.Context) { pressed++ },
	}))
	require.NoError(t, s.AddButton(gui.Button{Name: "noop", Caption: "Nothing"}))

	assert.True(t, s.Press(context.Background(), "quitButton"))
	assert.Equal(t, 1, pressed)
	assert.True(t, s.Press(context.Background(), "noop"), "a button without Apply is still pressable")
	assert.False(t, s.Press(context.Background(), "missing"))
	assert.Equal(t, 1, pressed)

	btn, ok := s.Button("quitButton")
	require.True(t, ok)
	assert.Equal(t, "Quit", btn.Caption)

	_, ok = s.Button("missing")
	assert.False(t, ok)

	names := []string{}
	for _, b := range s.Buttons() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"quitButton", "noop"}, names)
}

func TestMainScreen_RebuildReflectsButtons(t *testing.T) {
	s := gui.NewMainScreen("mainMenu", nil, gui.WithTitle("Stars"), gui.WithFooter("v1"))
	assert.Contains(t, s.Frame(), "# Stars")
	assert.NotContains(t, s.Frame(), "Quit")

	require.NoError(t, s.AddButton(gui.Button{Name: "quitButton", Caption: "Quit"}))
	assert.Contains(t, s.Frame(), "1. **Quit** `quitButton`")
	assert.Contains(t, s.Frame(), "_v1_")
}

func TestMainScreen_ShowTransfersHome(t *testing.T) {
	var out bytes.Buffer
	nav := &fakeNav{current: "mainState"}
	s := gui.NewMainScreen("mainMenu", nav, gui.WithOutput(&out))

	require.NoError(t, s.Show(context.Background()))
	assert.Equal(t, []string{"mainMenu"}, nav.requested)
	assert.Contains(t, out.String(), "# Main menu")

	nav.current = "mainMenu"
	require.NoError(t, s.Show(context.Background()))
	assert.Len(t, nav.requested, 1, "already home")
}

func TestMainScreen_GlamourRenderer(t *testing.T) {
	render, err := tui.NewRenderer("notty")
	require.NoError(t, err)

	s := gui.NewMainScreen("mainMenu", nil, gui.WithRenderer(render))
	require.NoError(t, s.AddButton(gui.Button{Name: "quitButton", Caption: "Quit"}))
	assert.Contains(t, s.Frame(), "Quit")
}

func TestMainScreen_RenderError(t *testing.T) {
	boom := errors.New("boom")
	s := gui.NewMainScreen("mainMenu", nil, gui.WithRenderer(func(string) (string, error) {
		return "", boom
	}))
	err := s.AddButton(gui.Button{Name: "x"})
	assert.ErrorIs(t, err, boom)
}
