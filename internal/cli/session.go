package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/drossy/stars/internal/config"
	"github.com/drossy/stars/internal/presentation/tui"
	httpAdapter "github.com/drossy/stars/pkg/adapters/http"
	"golang.org/x/term"
)

// RunOptions holds the inputs of a run session.
type RunOptions struct {
	Config config.Config
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// RunSession builds the application for opts.Config and runs it until it
// is stopped or ctx is done. SIGINT and SIGTERM cancel ctx.
func RunSession(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	logger := createLogger(cfg, opts.Stderr)

	interactive := isTerminal(opts.Stdin)
	style := "notty"
	if interactive {
		style = ""
	}

	sigCtx := NewSignalContext(ctx)
	defer sigCtx.Cancel()

	wiring, err := Build(sigCtx, cfg, logger, opts.Stdout, style)
	if err != nil {
		return fmt.Errorf("error initializing stars: %w", err)
	}
	defer wiring.Close()
	app := wiring.App

	if app.Side().IsClient() {
		tui.PrintBanner(opts.Stdout, app.Side().String())
	}

	if err := app.Start(sigCtx); err != nil {
		return fmt.Errorf("failed to start %s: %w", app.Side(), err)
	}

	if cfg.HTTPAddr != "" {
		handler := httpAdapter.NewHandler(app,
			httpAdapter.WithGatherer(wiring.Registry),
			httpAdapter.WithLogger(logger),
		)
		go func() {
			if err := httpAdapter.Serve(sigCtx, cfg.HTTPAddr, handler, logger); err != nil {
				logger.Error("http server failed", "error", err)
			}
		}()
	}

	if app.Side().IsClient() && interactive {
		go ReadMenuInput(sigCtx, app, opts.Stdin, opts.Stdout)
	}

	runErr := app.Run(sigCtx)
	if sig := sigCtx.Signal(); sig != nil {
		logger.Info("interrupted", "signal", sig.String())
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
