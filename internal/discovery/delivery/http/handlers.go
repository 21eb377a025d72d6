package http

import (
	"github.com/gin-gonic/gin"

	"agent-discovery/internal/middleware"
	"agent-discovery/pkg/response"
)

// HandleTurn godoc
// @Summary     Send a discovery turn
// @Description Processes one user message. Omit session_id to start a new session; owner_id (or the X-Owner-ID header) is then required.
// @Tags        Discovery
// @Accept      json
// @Produce     json
// @Param       X-Owner-ID header string  false "Caller owner id"
// @Param       body       body   turnReq true  "Turn"
// @Success     200 {object} turnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Session not found"
// @Failure     429 {object} response.Resp "Too many requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/discovery/turns [POST]
func (h *handler) HandleTurn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTurnReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleTurn(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.HandleTurn: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newTurnResp(output))
}

// GetSession godoc
// @Summary     Get a discovery session
// @Description Returns the session snapshot with its current step and progress.
// @Tags        Discovery
// @Produce     json
// @Param       X-Owner-ID header string false "Caller owner id"
// @Param       id         path   string true  "Session ID"
// @Success     200 {object} sessionResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/discovery/sessions/{id} [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.GetSession(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// ResetSession godoc
// @Summary     Reset a discovery session
// @Description Clears the session and restarts discovery from the first question.
// @Tags        Discovery
// @Produce     json
// @Param       X-Owner-ID header string false "Caller owner id"
// @Param       id         path   string true  "Session ID"
// @Success     200 {object} turnResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/discovery/sessions/{id} [DELETE]
func (h *handler) ResetSession(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ResetSession(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Warnf(ctx, "uc.ResetSession: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newTurnResp(output))
}
