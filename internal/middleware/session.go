package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"multi-agent-assistant/pkg/log"
	"multi-agent-assistant/pkg/response"
)

// Session resolves the caller's session id from the X-Session-ID header or
// the session_id query parameter, minting one when both are absent. The id
// is echoed back in the response header and attached to the request context
// for logging.
func (m Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderSessionID))
		if id == "" {
			id = strings.TrimSpace(c.Query(QuerySessionID))
		}
		if id == "" {
			id = m.sessions.NewID()
		}

		c.Set(ContextKeySessionID, id)
		c.Header(HeaderSessionID, id)
		c.Request = c.Request.WithContext(log.WithSessionID(c.Request.Context(), id))
		c.Next()
	}
}

// RateLimit rejects requests once a session exceeds its budget. It must run
// after Session.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := SessionID(c)
		if err := m.sessions.Allow(id); err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			response.TooManyRequests(c, err)
			return
		}
		c.Next()
	}
}

// SessionID returns the id resolved by Session, or "" outside that chain.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
