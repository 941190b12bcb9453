package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
)

// CheckFunc reports whether a dependency is reachable.
type CheckFunc func(ctx context.Context) error

// HealthHandlers handles liveness and readiness endpoints
type HealthHandlers struct {
	version   string
	startedAt time.Time
	timeout   time.Duration
	names     []string
	checks    map[string]CheckFunc
}

// NewHealthHandlers creates a new health handlers instance
func NewHealthHandlers(version string) *HealthHandlers {
	return &HealthHandlers{
		version:   version,
		startedAt: time.Now(),
		timeout:   2 * time.Second,
		checks:    make(map[string]CheckFunc),
	}
}

// AddCheck registers a dependency probed by the readiness endpoint.
func (h *HealthHandlers) AddCheck(name string, check CheckFunc) {
	if _, exists := h.checks[name]; !exists {
		h.names = append(h.names, name)
		sort.Strings(h.names)
	}
	h.checks[name] = check
}

// HealthStatus represents the overall health status
type HealthStatus struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services,omitempty"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
}

// LivenessCheck reports that the process is serving requests
//
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /health [get]
func (h *HealthHandlers) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, h.status("alive"))
}

// ReadinessCheck probes every registered dependency
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthStatus
// @Failure 503 {object} HealthStatus
// @Router /health/ready [get]
func (h *HealthHandlers) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	health := h.status("ready")
	health.Services = make(map[string]string, len(h.names))
	statusCode := http.StatusOK

	for _, name := range h.names {
		if err := h.checks[name](ctx); err != nil {
			health.Services[name] = "unhealthy"
			health.Status = "not_ready"
			statusCode = http.StatusServiceUnavailable
			continue
		}
		health.Services[name] = "healthy"
	}

	return c.JSON(statusCode, health)
}

func (h *HealthHandlers) status(s string) *HealthStatus {
	return &HealthStatus{
		Status:    s,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Version:   h.version,
	}
}
