package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/drossy/stars"
	"github.com/drossy/stars/internal/config"
	"github.com/drossy/stars/internal/i18n"
	"github.com/drossy/stars/internal/logging"
	"github.com/drossy/stars/internal/presentation/tui"
	"github.com/drossy/stars/pkg/adapters/redis"
	"github.com/drossy/stars/pkg/observability"
	"github.com/drossy/stars/pkg/persistence/middleware"
	"github.com/drossy/stars/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// StoreTimeout bounds each persistence call made from the update loop.
const StoreTimeout = 250 * time.Millisecond

// Wiring is everything built from a configuration before the loop starts.
type Wiring struct {
	App      *stars.Application
	Registry *prometheus.Registry
	Store    ports.StateStore
	close    func() error
}

// Close releases the store connection, if any.
func (w *Wiring) Close() error {
	if w.close == nil {
		return nil
	}
	return w.close()
}

// createLogger configures the application logger. Debug wins over the
// configured level.
func createLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return logging.NewWithWriter(w, level)
}

// Build wires an application for cfg: metrics, persistence, localisation
// and the screen renderer.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer, style string) (*Wiring, error) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	hooks := observability.ChainHooks(metrics.Hooks(), observability.LoggingHooks(logger))

	render, err := tui.NewRenderer(style)
	if err != nil {
		return nil, err
	}

	w := &Wiring{Registry: reg}
	opts := []stars.Option{
		stars.WithLogger(logger),
		stars.WithLifecycleHooks(hooks),
		stars.WithTickRate(cfg.TickRate),
		stars.WithInitialState(cfg.InitialState),
		stars.WithStrictLookup(cfg.StrictLookup),
		stars.WithScreenOutput(out),
		stars.WithRenderer(render),
		stars.WithLocalizer(i18n.Default(cfg.Locale)),
	}

	if cfg.Redis.Addr != "" {
		store, err := openRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		w.Store = middleware.Chain(store,
			middleware.NewLoggingMiddleware(logger),
			middleware.NewTimeoutMiddleware(StoreTimeout),
		)
		w.close = store.Close
		opts = append(opts, stars.WithStore(w.Store))
		logger.Debug("last-state persistence enabled", "addr", cfg.Redis.Addr)
	}

	app, err := stars.New(cfg.Side, opts...)
	if err != nil {
		_ = w.Close()
		return nil, err
	}
	w.App = app
	return w, nil
}

func openRedis(ctx context.Context, rc config.RedisConfig) (*redis.Store, error) {
	var opts []redis.Option
	if rc.Prefix != "" {
		opts = append(opts, redis.WithPrefix(rc.Prefix))
	}
	if rc.TTL > 0 {
		opts = append(opts, redis.WithTTL(rc.TTL))
	}
	store := redis.New(rc.Addr, rc.Password, rc.DB, opts...)
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", rc.Addr, err)
	}
	return store, nil
}
