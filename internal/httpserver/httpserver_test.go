package httpserver

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multi-agent-assistant/internal/agent/orchestrator"
	"multi-agent-assistant/internal/agent/session"
	"multi-agent-assistant/pkg/log"
)

func newTestServer(t *testing.T, ready func() error) *HTTPServer {
	t.Helper()
	sessions := session.New(session.Config{}, func(string) *orchestrator.Orchestrator {
		return orchestrator.New(orchestrator.Config{})
	})
	srv, err := New(log.NewNop(), Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Sessions:    sessions,
		ReadyCheck:  ready,
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}

	w := get(srv, "/api/v1/capabilities")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Available Capabilities")
}

func TestReadyCheckFailure(t *testing.T) {
	srv := newTestServer(t, func() error { return errors.New("company database unavailable") })

	w := get(srv, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "company database unavailable")

	assert.Equal(t, http.StatusOK, get(srv, "/live").Code)
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, Sessions: session.New(session.Config{}, nil)})
	assert.Error(t, err)
}

func TestHealthReportsUptime(t *testing.T) {
	srv := newTestServer(t, nil)

	w := get(srv, "/health")
	assert.Contains(t, w.Body.String(), `"uptime"`)
	assert.Contains(t, w.Body.String(), `"started":"now"`)
}
