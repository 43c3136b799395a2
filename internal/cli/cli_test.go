package cli_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/drossy/stars/internal/cli"
	"github.com/drossy/stars/internal/config"
	"github.com/drossy/stars/internal/logging"
	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/states"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_WithoutRedis(t *testing.T) {
	cfg := config.Default()
	w, err := cli.Build(context.Background(), cfg, logging.NewNop(), io.Discard, "notty")
	require.NoError(t, err)
	defer w.Close()

	assert.Nil(t, w.Store)
	assert.Equal(t, domain.SideClient, w.App.Side())
	assert.Equal(t, []string{states.MainMenuName}, w.App.Available())

	families, err := w.Registry.Gather()
	require.NoError(t, err)
	names := []string{}
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "stars_registered_states")
}

func TestBuild_WithRedisPersistsTransitions(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := config.Default()
	cfg.Side = domain.SideServer
	cfg.Redis.Addr = mr.Addr()
	cfg.Redis.Prefix = "it:"

	ctx := context.Background()
	w, err := cli.Build(ctx, cfg, logging.NewNop(), io.Discard, "notty")
	require.NoError(t, err)
	defer w.Close()
	require.NotNil(t, w.Store)

	require.NoError(t, w.App.Start(ctx))
	saved, err := w.Store.LoadCurrent(ctx, w.App.Name())
	require.NoError(t, err)
	assert.Equal(t, states.ServerMainName, saved)
	assert.True(t, mr.Exists("it:"+w.App.Name()))
}

func TestBuild_UnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.Redis.Addr = addr
	_, err := cli.Build(context.Background(), cfg, logging.NewNop(), io.Discard, "notty")
	assert.Error(t, err)
}

func TestReadMenuInput(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.TickRate = 200
	w, err := cli.Build(ctx, cfg, logging.NewNop(), io.Discard, "notty")
	require.NoError(t, err)
	app := w.App
	require.NoError(t, app.Start(ctx))

	go func() { _ = app.Run(ctx) }()

	var out bytes.Buffer
	// "1" is the only button (Quit) of a menu without other states.
	cli.ReadMenuInput(ctx, app, strings.NewReader("\nnope\n7\n1\n"), &out)

	select {
	case <-app.Done():
	case <-time.After(time.Second):
		t.Fatal("quit button did not stop the application")
	}
	assert.Contains(t, out.String(), `Unknown option "nope"`)
	assert.Contains(t, out.String(), `Unknown option "7"`)
}

func TestReadMenuInput_QuitKeyword(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Side = domain.SideServer
	w, err := cli.Build(ctx, cfg, logging.NewNop(), io.Discard, "notty")
	require.NoError(t, err)
	app := w.App

	var out bytes.Buffer
	cli.ReadMenuInput(ctx, app, strings.NewReader("arena\nquit\n"), &out)
	assert.Contains(t, out.String(), `Unknown option "arena"`, "servers have no menu")

	// Stop was requested, so Run returns right away.
	require.NoError(t, app.Run(ctx))
}

func TestRunSession_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.Side = domain.SideServer
	cfg.TickRate = 100

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	var stdout, stderr bytes.Buffer
	err := cli.RunSession(ctx, cli.RunOptions{
		Config: cfg,
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "application stopped")
}

func TestRunSession_ClientPrintsBanner(t *testing.T) {
	cfg := config.Default()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var stdout bytes.Buffer
	err := cli.RunSession(ctx, cli.RunOptions{
		Config: cfg,
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: io.Discard,
	})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "drossy stars · client")
	assert.Contains(t, stdout.String(), "Quit")
}

func TestRunSession_StrictUnknownInitial(t *testing.T) {
	cfg := config.Default()
	cfg.Side = domain.SideServer
	cfg.InitialState = "ghost"
	cfg.StrictLookup = true

	err := cli.RunSession(context.Background(), cli.RunOptions{
		Config: cfg,
		Stdin:  strings.NewReader(""),
		Stdout: io.Discard,
		Stderr: io.Discard,
	})
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}
