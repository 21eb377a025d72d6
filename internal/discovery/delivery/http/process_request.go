package http

import (
	"github.com/gin-gonic/gin"
)

// processTurnReq binds the turn request body. Message content is checked by
// the use case.
func (h *handler) processTurnReq(c *gin.Context) (turnReq, error) {
	var req turnReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSessionID reads the session id path parameter.
func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errSessionIDRequired
	}
	return id, nil
}
