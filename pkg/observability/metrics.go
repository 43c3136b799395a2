package observability

import (
	"context"

	"github.com/drossy/stars/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by machine lifecycle hooks.
type Metrics struct {
	transitions  *prometheus.CounterVec
	failures     *prometheus.CounterVec
	lookupMisses prometheus.Counter
	loadDuration *prometheus.HistogramVec
	registered   prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stars_state_transitions_total",
				Help: "Total number of successful game state transitions",
			},
			[]string{"from", "to"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stars_state_transition_failures_total",
				Help: "Total number of transitions aborted by a failing load or unload",
			},
			[]string{"state", "phase"},
		),
		lookupMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "stars_state_lookup_misses_total",
				Help: "Total number of transfers requested to unregistered states",
			},
		),
		loadDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stars_state_load_duration_seconds",
				Help:    "Duration of game state Load calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"state"},
		),
		registered: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "stars_registered_states",
				Help: "Number of registered game states",
			},
		),
	}
	reg.MustRegister(m.transitions, m.failures, m.lookupMisses, m.loadDuration, m.registered)
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRegister: func(ctx context.Context, e *domain.StateEvent) {
			m.registered.Inc()
		},
		OnLoad: func(ctx context.Context, e *domain.StateEvent) {
			m.loadDuration.WithLabelValues(e.State).Observe(e.Duration.Seconds())
		},
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			m.transitions.WithLabelValues(e.From, e.To).Inc()
		},
		OnTransitionFailed: func(ctx context.Context, e *domain.TransitionEvent) {
			state := e.To
			if e.Phase == domain.PhaseUnload {
				state = e.From
			}
			m.failures.WithLabelValues(state, string(e.Phase)).Inc()
		},
		OnLookupMiss: func(ctx context.Context, e *domain.TransitionEvent) {
			m.lookupMisses.Inc()
		},
	}
}
