package httpserver

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"

	"multi-agent-assistant/pkg/response"
)

const (
	HealthMessage = "Multi-agent assistant API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "multi-agent-assistant"
)

func (srv HTTPServer) status(state string) gin.H {
	return gin.H{
		"status":  state,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"started": humanize.Time(srv.started),
		"uptime":  time.Since(srv.started).Round(time.Second).String(),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports 503 while a shared backend is unavailable. The
// process keeps serving the agents that did start.
// @Summary Readiness Check
// @Description Check that every backend agent started
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, response.NewErrResp(response.ServiceUnavailableCode, err, srv.status("degraded")))
			return
		}
	}

	body := srv.status("ready")
	body["sessions"] = srv.sessions.Len()
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}
