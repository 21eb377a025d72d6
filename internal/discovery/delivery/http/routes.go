package http

import (
	"github.com/gin-gonic/gin"

	"agent-discovery/internal/middleware"
)

// RegisterRoutes maps the discovery endpoints under rg. Turns are rate
// limited per owner.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.Scope())

	rg.POST("/turns", mw.RateLimit(), h.HandleTurn)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("/:id", h.GetSession)
		sessions.DELETE("/:id", h.ResetSession)
	}
}
