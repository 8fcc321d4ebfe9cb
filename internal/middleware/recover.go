package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"multi-agent-assistant/pkg/response"
)

// Recover turns a panic in a handler into a 500 envelope and logs it.
func (m Middleware) Recover() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		m.l.Errorf(c.Request.Context(), "middleware.Recover: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, err)
		c.Abort()
	})
}
