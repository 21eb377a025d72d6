package middleware

import (
	"github.com/gin-gonic/gin"

	"agent-discovery/internal/model"
	"agent-discovery/pkg/log"
)

// Scope builds the caller scope from the request headers.
func (mw Middleware) Scope() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{OwnerID: c.GetHeader(HeaderOwnerID)}
		if id, ok := c.Request.Context().Value(log.RequestIDKey).(string); ok {
			sc.RequestID = id
		}
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope set by Scope, or an empty one.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}
