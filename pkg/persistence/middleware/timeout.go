package middleware

import (
	"context"
	"time"

	"github.com/drossy/stars/pkg/ports"
)

type timeoutMiddleware struct {
	next    ports.StateStore
	timeout time.Duration
}

// NewTimeoutMiddleware bounds every store call to d.
func NewTimeoutMiddleware(d time.Duration) Middleware {
	return func(next ports.StateStore) ports.StateStore {
		return &timeoutMiddleware{next: next, timeout: d}
	}
}

func (m *timeoutMiddleware) SaveCurrent(ctx context.Context, app string, name string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.SaveCurrent(ctx, app, name)
}

func (m *timeoutMiddleware) LoadCurrent(ctx context.Context, app string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.LoadCurrent(ctx, app)
}

func (m *timeoutMiddleware) Clear(ctx context.Context, app string) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	return m.next.Clear(ctx, app)
}
