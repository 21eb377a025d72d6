package httpserver

import (
	"agent-discovery/pkg/response"

	"github.com/gin-gonic/gin"
)

// Service identity reported by the probes.
const (
	HealthMessage = "Agent discovery API"
	HealthVersion = "1.0.0"
	ServiceName   = "agent-discovery"
)

// Completion modes reported by readyCheck.
const (
	CompletionModeService = "completion_service"
	CompletionModeRules   = "keyword_rules"
)

// SessionCounter reports how many discovery sessions are live.
type SessionCounter interface {
	Len() int
}

func (srv HTTPServer) probe(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
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
	response.OK(c, srv.probe("healthy"))
}

// readyCheck reports readiness along with the completion mode and the number
// of live sessions. Running on keyword rules is still ready.
// @Summary Readiness Check
// @Description Check if the API is ready to serve discovery turns
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := srv.probe("ready")
	body["completion"] = CompletionModeRules
	if srv.completionEnabled {
		body["completion"] = CompletionModeService
	}
	if srv.sessions != nil {
		body["sessions"] = srv.sessions.Len()
	}
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.probe("alive"))
}
