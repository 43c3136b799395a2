package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/drossy/stars/pkg/domain"
	"github.com/drossy/stars/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.StateStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store call at debug level and failures
// at warn level. A missing saved state is not a failure.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.StateStore) ports.StateStore {
		return &loggingMiddleware{next: next, logger: logger}
	}
}

func (m *loggingMiddleware) SaveCurrent(ctx context.Context, app string, name string) error {
	start := time.Now()
	err := m.next.SaveCurrent(ctx, app, name)
	m.log(ctx, "save", app, name, start, err)
	return err
}

func (m *loggingMiddleware) LoadCurrent(ctx context.Context, app string) (string, error) {
	start := time.Now()
	name, err := m.next.LoadCurrent(ctx, app)
	if errors.Is(err, domain.ErrNoSavedState) {
		m.log(ctx, "load", app, "", start, nil)
		return name, err
	}
	m.log(ctx, "load", app, name, start, err)
	return name, err
}

func (m *loggingMiddleware) Clear(ctx context.Context, app string) error {
	start := time.Now()
	err := m.next.Clear(ctx, app)
	m.log(ctx, "clear", app, "", start, err)
	return err
}

func (m *loggingMiddleware) log(ctx context.Context, op, app, state string, start time.Time, err error) {
	if err != nil {
		m.logger.WarnContext(ctx, "state store call failed", "op", op, "app", app, "error", err)
		return
	}
	m.logger.DebugContext(ctx, "state store call", "op", op, "app", app, "state", state, "duration", time.Since(start))
}
