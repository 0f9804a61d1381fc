package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coursework-hub/instructor-dashboard/internal/course/client"
)

// SessionPinger is the part of the session store the health check needs.
type SessionPinger interface {
	Ping(ctx context.Context) error
	Kind() string
}

type UpstreamStats struct {
	Calls            int64   `json:"calls"`
	Errors           int64   `json:"errors"`
	AverageLatencyMS float64 `json:"avg_latency_ms"`
	ErrorRate        float64 `json:"error_rate_pct"`
}

type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Service   string        `json:"service"`
	Version   string        `json:"version"`
	Sessions  string        `json:"sessions"`
	Upstream  UpstreamStats `json:"upstream"`
}

type HealthHandler struct {
	serviceName string
	version     string
	sessions    SessionPinger
}

func NewHealthHandler(serviceName, version string, sessions SessionPinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		sessions:    sessions,
	}
}

// HealthCheck always answers 200; a redis outage only degrades session
// persistence, so it is reported rather than failed on.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	sessionStatus := "disabled"
	status := "healthy"
	if h.sessions != nil {
		sessionStatus = h.sessions.Kind()
		if sessionStatus != "memory" {
			pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
			defer cancel()

			if err := h.sessions.Ping(pingCtx); err != nil {
				sessionStatus = "down"
				status = "degraded"
			} else {
				sessionStatus = "up"
			}
		}
	}

	m := client.GetMetrics()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Sessions:  sessionStatus,
		Upstream: UpstreamStats{
			Calls:            m.Calls,
			Errors:           m.Errors,
			AverageLatencyMS: m.AverageLatency(),
			ErrorRate:        m.ErrorRate(),
		},
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
