// Package http provides the HTTP middleware chain and the health, readiness
// and metrics endpoints of the API server. Feature handlers live in the
// summarize, assistant and learnpath subpackages.
package http

import (
	"net/http"
	"sort"
	"sync/atomic"
	"time"

	"ai-toolkit/internal/handler/http/respond"
)

// BreakerReporter exposes the circuit breaker state of a remote dependency.
type BreakerReporter interface {
	BreakerState() string
}

// HealthResponse represents the JSON response for the health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "degraded"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single dependency.
type CheckStatus struct {
	Status  string `json:"status"` // "healthy", "degraded" or "disabled"
	Message string `json:"message,omitempty"`
}

// HealthHandler reports the state of remote dependencies. An open breaker
// degrades the status but still answers 200, since summaries and learning
// paths are computed locally and the assistant falls back to a canned reply.
type HealthHandler struct {
	Version string
	// Dependencies maps a component name to its breaker. A nil value marks
	// the component as disabled.
	Dependencies map[string]BreakerReporter
}

// ServeHTTP implements http.Handler.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus, len(h.Dependencies))
	status := "healthy"

	names := make([]string, 0, len(h.Dependencies))
	for name := range h.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		dep := h.Dependencies[name]
		if dep == nil {
			checks[name] = CheckStatus{Status: "disabled"}
			continue
		}
		state := dep.BreakerState()
		if state == "open" {
			checks[name] = CheckStatus{Status: "degraded", Message: "circuit breaker open"}
			status = "degraded"
			continue
		}
		checks[name] = CheckStatus{Status: "healthy", Message: "circuit breaker " + state}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// Readiness tracks whether the server should receive traffic. It starts not
// ready; main marks it ready once listening and unready when shutdown begins.
type Readiness struct {
	ready atomic.Bool
}

// SetReady updates the readiness flag.
func (r *Readiness) SetReady(ready bool) {
	r.ready.Store(ready)
}

// Ready reports the current flag.
func (r *Readiness) Ready() bool {
	return r.ready.Load()
}

// ReadyHandler answers 200 when ready and 503 otherwise.
type ReadyHandler struct {
	Readiness *Readiness
}

// ServeHTTP implements http.Handler.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if h.Readiness == nil || !h.Readiness.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("not ready"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler handles liveness probe requests.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK while the process can respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}

// RegisterHealth mounts /health, /live and /ready on mux.
func RegisterHealth(mux *http.ServeMux, health *HealthHandler, readiness *Readiness) {
	mux.Handle("GET /health", health)
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /ready", &ReadyHandler{Readiness: readiness})
}
