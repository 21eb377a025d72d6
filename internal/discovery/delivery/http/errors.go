package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"agent-discovery/internal/discovery"
	"agent-discovery/pkg/response"
)

var errSessionIDRequired = errors.New("session id is required")

// writeError maps use-case errors to HTTP responses. Unknown errors are
// internal and never leak their message.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, discovery.ErrSessionNotFound):
		response.NotFound(c, err)
	case errors.Is(err, discovery.ErrOwnerMismatch):
		response.Forbidden(c)
	case errors.Is(err, discovery.ErrOwnerRequired),
		errors.Is(err, discovery.ErrEmptyMessage),
		errors.Is(err, discovery.ErrMessageTooLong),
		errors.Is(err, errSessionIDRequired):
		response.Error(c, err, nil)
	default:
		h.l.Errorf(c.Request.Context(), "discovery.delivery.http: %v", err)
		response.InternalError(c, err)
	}
}
