package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessions struct {
	kind string
	err  error
}

func (s stubSessions) Ping(ctx context.Context) error { return s.err }
func (s stubSessions) Kind() string { return s.kind }

func healthResponse(t *testing.T, sessions SessionPinger) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler("instructor-dashboard", "test", sessions).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		sessions SessionPinger
		status   string
		store    string
	}{
		{name: "no store", sessions: nil, status: "healthy", store: "disabled"},
		{name: "memory", sessions: stubSessions{kind: "memory"}, status: "healthy", store: "memory"},
		{name: "redis up", sessions: stubSessions{kind: "redis"}, status: "healthy", store: "up"},
		{name: "redis down", sessions: stubSessions{kind: "redis", err: errors.New("dial tcp: refused")}, status: "degraded", store: "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := healthResponse(t, tt.sessions)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.store, resp.Sessions)
			assert.Equal(t, "instructor-dashboard", resp.Service)
		})
	}
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	NewHealthHandler("instructor-dashboard", "test", nil).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
