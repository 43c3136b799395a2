package states_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/drossy/stars/internal/i18n"
	"github.com/drossy/stars/pkg/adapters/memory"
	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/states"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	mu        sync.Mutex
	current   string
	available []string
	requested []string
	stopped   int
}

func (h *fakeHost) CurrentName() string { return h.current }
func (h *fakeHost) Available() []string { return h.available }

func (h *fakeHost) RequestTransfer(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.requested = append(h.requested, name)
}

func (h *fakeHost) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopped++
}

func TestMainMenu_LoadBuildsScreen(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{available: []string{"mainMenu", "mainState", "options"}}
	engine := memory.NewAttacher()
	var out bytes.Buffer

	menu := states.NewMainMenu(host, engine, states.WithMenuOutput(&out))
	assert.Equal(t, states.MainMenuName, menu.Name())
	assert.Nil(t, menu.Screen())

	require.NoError(t, menu.Load(ctx))
	assert.True(t, engine.IsAttached(menu))

	screen := menu.Screen()
	require.NotNil(t, screen)
	names := []string{}
	for _, b := range screen.Buttons() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"mainStateButton", "optionsButton", states.QuitButton}, names)
	assert.Contains(t, out.String(), "Quit")
	assert.Contains(t, out.String(), "Open options")
}

func TestMainMenu_ButtonsDriveHost(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{available: []string{"mainMenu", "mainState"}}
	menu := states.NewMainMenu(host, memory.NewAttacher())
	require.NoError(t, menu.Load(ctx))

	assert.True(t, menu.Screen().Press(ctx, "mainStateButton"))
	assert.Equal(t, []string{"mainState"}, host.requested)

	assert.True(t, menu.Screen().Press(ctx, states.QuitButton))
	assert.Equal(t, 1, host.stopped)

	assert.False(t, menu.Screen().Press(ctx, "nope"))
}

func TestMainMenu_LocalizedQuit(t *testing.T) {
	host := &fakeHost{available: []string{"mainMenu"}}
	menu := states.NewMainMenu(host, memory.NewAttacher(),
		states.WithMenuLocalizer(i18n.Default("ru")))
	require.NoError(t, menu.Load(context.Background()))

	btn, ok := menu.Screen().Button(states.QuitButton)
	require.True(t, ok)
	assert.Equal(t, "Выход", btn.Caption)
}

func TestMainMenu_Lifecycle(t *testing.T) {
	ctx := context.Background()
	host := &fakeHost{available: []string{"mainMenu"}}
	engine := memory.NewAttacher()
	menu := states.NewMainMenu(host, engine)

	assert.ErrorIs(t, menu.Unload(ctx), domain.ErrNotLoaded)

	require.NoError(t, menu.Load(ctx))
	assert.ErrorIs(t, menu.Load(ctx), domain.ErrAlreadyLoaded)

	require.NoError(t, menu.Unload(ctx))
	assert.False(t, engine.IsAttached(menu))
	assert.Nil(t, menu.Screen())

	// Reload after unload is allowed.
	require.NoError(t, menu.Load(ctx))
	assert.True(t, engine.IsAttached(menu))
}

func TestServerMain(t *testing.T) {
	ctx := context.Background()
	engine := memory.NewAttacher()
	s := states.NewServerMain(engine)
	assert.Equal(t, states.ServerMainName, s.Name())

	require.NoError(t, s.Load(ctx))
	assert.Equal(t, []string{states.ServerMainName}, engine.Attached())
	assert.ErrorIs(t, s.Load(ctx), domain.ErrAlreadyLoaded)

	s.Update(ctx, 0.5)
	s.Update(ctx, 0.25)
	assert.Equal(t, int64(2), s.Ticks())
	assert.InDelta(t, 0.75, s.Elapsed(), 1e-9)

	require.NoError(t, s.Unload(ctx))
	assert.Empty(t, engine.Attached())
	assert.ErrorIs(t, s.Unload(ctx), domain.ErrNotLoaded)
}
