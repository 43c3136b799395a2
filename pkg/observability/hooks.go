package observability

import (
	"context"
	"log/slog"

	"github.com/drossy/stars/pkg/domain"
)

// ChainHooks combines several hook sets; each callback runs in order.
func ChainHooks(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks
	for _, h := range sets {
		out.OnRegister = chainState(out.OnRegister, h.OnRegister)
		out.OnLoad = chainState(out.OnLoad, h.OnLoad)
		out.OnUnload = chainState(out.OnUnload, h.OnUnload)
		out.OnTransition = chainTransition(out.OnTransition, h.OnTransition)
		out.OnTransitionFailed = chainTransition(out.OnTransitionFailed, h.OnTransitionFailed)
		out.OnLookupMiss = chainTransition(out.OnLookupMiss, h.OnLookupMiss)
	}
	return out
}

// LoggingHooks logs load and unload timings at debug level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnLoad: func(ctx context.Context, e *domain.StateEvent) {
			logger.DebugContext(ctx, "state_load", "state", e.State, "duration", e.Duration)
		},
		OnUnload: func(ctx context.Context, e *domain.StateEvent) {
			logger.DebugContext(ctx, "state_unload", "state", e.State, "duration", e.Duration)
		},
	}
}

func chainState(a, b func(context.Context, *domain.StateEvent)) func(context.Context, *domain.StateEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.StateEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}

func chainTransition(a, b func(context.Context, *domain.TransitionEvent)) func(context.Context, *domain.TransitionEvent) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(ctx context.Context, e *domain.TransitionEvent) {
		a(ctx, e)
		b(ctx, e)
	}
}
