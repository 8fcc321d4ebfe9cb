package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"multi-agent-assistant/internal/agent/session"
	"multi-agent-assistant/internal/docqa"
	"multi-agent-assistant/pkg/response"
)

var (
	errMessageRequired   = errors.New("message is required")
	errSessionIDRequired = errors.New("session_id is required")
	errSessionNotFound   = errors.New("session not found")
	errUnknownAgent      = errors.New("unknown agent")
	errAgentUnavailable  = errors.New("agent not available")
	errInvalidK          = errors.New("invalid k")
	errInvalidBody       = errors.New("invalid request body")
)

var requestErrors = []error{
	errInvalidBody,
	errMessageRequired,
	errSessionIDRequired,
	errUnknownAgent,
	errAgentUnavailable,
	errInvalidK,
}

const maxSearchK = 20

// mapError writes err with the status its kind calls for. Unlisted errors
// are server failures and their cause is only logged.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrRateLimited):
		response.TooManyRequests(c, err)
	case errors.Is(err, errSessionNotFound):
		response.NotFound(c, err)
	case isRequestError(err):
		response.Error(c, err, nil)
	case errors.Is(err, docqa.ErrNotInitialized):
		response.ServiceUnavailable(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "agent.http.mapError: %v", err)
		response.InternalError(c, err)
	}
}

func isRequestError(err error) bool {
	for _, target := range requestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
