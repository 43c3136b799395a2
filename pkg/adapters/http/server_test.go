package http_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/drossy/stars/internal/logging"
	httpAdapter "github.com/drossy/stars/pkg/adapters/http"
	"github.com/drossy/stars/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockController struct {
	mu        sync.Mutex
	current   string
	available []string
	requested []string
}

func (m *mockController) Side() domain.Side   { return domain.SideServer }
func (m *mockController) Available() []string { return m.available }
func (m *mockController) CurrentName() string { return m.current }

func (m *mockController) RequestTransfer(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requested = append(m.requested, name)
}

func newController() *mockController {
	return &mockController{current: "mainState", available: []string{"arena", "mainState"}}
}

func TestListStates(t *testing.T) {
	handler := httpAdapter.NewHandler(newController())

	req := httptest.NewRequest(http.MethodGet, "/states", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp httpAdapter.StatesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "server", resp.Side)
	assert.Equal(t, "mainState", resp.Current)
	assert.ElementsMatch(t, []string{"arena", "mainState"}, resp.Available)
}

func TestCurrentState(t *testing.T) {
	ctrl := newController()
	handler := httpAdapter.NewHandler(ctrl)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/states/current", nil))
	var resp httpAdapter.CurrentResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, httpAdapter.CurrentResponse{Current: "mainState", Active: true}, resp)

	ctrl.current = ""
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/states/current", nil))
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Active)
}

func TestTransfer(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantCode  int
		wantQueue []string
	}{
		{"Accepted", `{"name":"arena"}`, http.StatusAccepted, []string{"arena"}},
		{"Unknown", `{"name":"ghost"}`, http.StatusNotFound, nil},
		{"Empty", `{"name":""}`, http.StatusBadRequest, nil},
		{"Malformed", `{name`, http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := newController()
			handler := httpAdapter.NewHandler(ctrl)

			req := httptest.NewRequest(http.MethodPut, "/states/current", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantQueue, ctrl.requested)
		})
	}
}

type historyController struct {
	*mockController
	history []string
}

func (h historyController) History() []string   { return h.history }
func (h historyController) DefaultState() string { return "mainState" }

func TestStateGraph(t *testing.T) {
	w := httptest.NewRecorder()
	httpAdapter.NewHandler(newController()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/states/graph", nil))
	assert.Equal(t, http.StatusNotImplemented, w.Code)

	ctrl := historyController{mockController: newController(), history: []string{"mainState", "arena", "mainState"}}
	w = httptest.NewRecorder()
	httpAdapter.NewHandler(ctrl).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/states/graph", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `mainState(("mainState"))`)
	assert.Contains(t, body, "mainState --> arena")
	assert.Contains(t, body, "arena --> mainState")
	assert.Contains(t, body, "class mainState current;")
}

func TestHealthAndCORS(t *testing.T) {
	handler := httpAdapter.NewHandler(newController())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/states/current", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "stars_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	handler := httpAdapter.NewHandler(newController(), httpAdapter.WithGatherer(reg))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "stars_test_total 1")
}

func TestServe_StopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpAdapter.Serve(ctx, addr, httpAdapter.NewHandler(newController()), logging.NewNop())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
