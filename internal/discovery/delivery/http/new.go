package http

import (
	"github.com/gin-gonic/gin"

	"agent-discovery/internal/discovery"
	"agent-discovery/pkg/log"
)

// Handler is the public interface for the discovery HTTP delivery layer.
type Handler interface {
	HandleTurn(c *gin.Context)
	GetSession(c *gin.Context)
	ResetSession(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc discovery.UseCase
}

// New creates a new HTTP handler for the discovery domain.
func New(l log.Logger, uc discovery.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
