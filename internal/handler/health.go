package handler

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is the probe surface a dependency exposes.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// readyzTimeout bounds how long a readiness probe may hold a request.
const readyzTimeout = 5 * time.Second

// dependency pairs a probe with the name reported in the response.
type dependency struct {
	name    string
	checker HealthChecker
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	deps []dependency
}

// NewHealthHandler creates a HealthHandler probing the database and
// cache. Pass nil for a dependency that is not configured.
func NewHealthHandler(db, cache HealthChecker) *HealthHandler {
	return &HealthHandler{
		deps: []dependency{
			{name: "postgres", checker: db},
			{name: "redis", checker: cache},
		},
	}
}

// HealthResponse is the payload of both probe endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz reports that the process is serving requests. No dependency
// is touched; taking an unhealthy instance out of rotation belongs to
// the readiness probe.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz pings every dependency and reports 503 unless all answer.
// Subscribe and publish traffic need both Postgres and Redis.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.deps))
	healthy := true

	for _, dep := range h.deps {
		if dep.checker == nil {
			checks[dep.name] = "not configured"
			continue
		}
		if err := dep.checker.Ping(ctx); err != nil {
			checks[dep.name] = "error: " + err.Error()
			healthy = false
			continue
		}
		checks[dep.name] = "ok"
	}

	status := http.StatusOK
	response := HealthResponse{Status: "ok", Checks: checks}
	if !healthy {
		status = http.StatusServiceUnavailable
		response.Status = "unhealthy"
	}

	writeJSON(w, status, response)
}
