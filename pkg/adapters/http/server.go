// Package http exposes a running application over a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/drossy/stars/internal/logging"
	"github.com/drossy/stars/internal/presentation/graph"
	"github.com/drossy/stars/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controller is the application surface served over HTTP.
type Controller interface {
	Side() domain.Side
	Available() []string
	CurrentName() string
	RequestTransfer(name string)
}

// Historian is implemented by controllers that remember activated states.
// When present, GET /states/graph serves a Mermaid diagram.
type Historian interface {
	History() []string
}

// GraphEntrier names the state drawn as the graph entry point.
type GraphEntrier interface {
	DefaultState() string
}

// StatesResponse is returned by GET /states.
type StatesResponse struct {
	Side      string   `json:"side"`
	Current   string   `json:"current"`
	Available []string `json:"available"`
}

// CurrentResponse is returned by GET /states/current.
type CurrentResponse struct {
	Current string `json:"current"`
	Active  bool   `json:"active"`
}

// TransferRequest is the body of PUT /states/current.
type TransferRequest struct {
	Name string `json:"name"`
}

type server struct {
	ctrl   Controller
	logger *slog.Logger
}

type handlerConfig struct {
	gatherer prometheus.Gatherer
	logger   *slog.Logger
}

// HandlerOption configures NewHandler.
type HandlerOption func(*handlerConfig)

// WithGatherer sets the registry served on /metrics. Defaults to the
// Prometheus default gatherer.
func WithGatherer(g prometheus.Gatherer) HandlerOption {
	return func(c *handlerConfig) {
		c.gatherer = g
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(c *handlerConfig) {
		c.logger = logger
	}
}

// NewHandler creates the HTTP handler for ctrl.
func NewHandler(ctrl Controller, opts ...HandlerOption) http.Handler {
	cfg := handlerConfig{
		gatherer: prometheus.DefaultGatherer,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &server{ctrl: ctrl, logger: cfg.logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Get("/states", s.listStates)
	r.Get("/states/current", s.currentState)
	r.Put("/states/current", s.transfer)
	r.Get("/states/graph", s.stateGraph)
	r.Handle("/metrics", promhttp.HandlerFor(cfg.gatherer, promhttp.HandlerOpts{}))
	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok"))
}

func (s *server) listStates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, StatesResponse{
		Side:      s.ctrl.Side().String(),
		Current:   s.ctrl.CurrentName(),
		Available: s.ctrl.Available(),
	})
}

func (s *server) currentState(w http.ResponseWriter, r *http.Request) {
	cur := s.ctrl.CurrentName()
	s.writeJSON(w, http.StatusOK, CurrentResponse{Current: cur, Active: cur != ""})
}

func (s *server) stateGraph(w http.ResponseWriter, r *http.Request) {
	h, ok := s.ctrl.(Historian)
	if !ok {
		http.Error(w, "history not available", http.StatusNotImplemented)
		return
	}
	entry := ""
	if e, ok := s.ctrl.(GraphEntrier); ok {
		entry = e.DefaultState()
	}
	diagram := graph.GenerateMermaid(s.ctrl.Available(), entry, &graph.GraphOverlay{
		History: h.History(),
		Current: s.ctrl.CurrentName(),
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(diagram))
}

func (s *server) transfer(w http.ResponseWriter, r *http.Request) {
	var body TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("transfer: invalid request body", "error", err)
		return
	}
	if body.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if !slices.Contains(s.ctrl.Available(), body.Name) {
		http.Error(w, "unknown state: "+body.Name, http.StatusNotFound)
		s.logger.Warn("transfer: unknown state", "state", body.Name)
		return
	}

	s.ctrl.RequestTransfer(body.Name)
	s.logger.Info("transfer requested over http", "state", body.Name)
	s.writeJSON(w, http.StatusAccepted, body)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

// ShutdownTimeout bounds how long Serve waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Serve runs an HTTP server on addr until ctx is cancelled, then shuts it
// down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("graceful shutdown did not complete", "timeout", ShutdownTimeout, "error", err)
			return srv.Close()
		}
		logger.Info("http server stopped")
		return nil
	}
}
