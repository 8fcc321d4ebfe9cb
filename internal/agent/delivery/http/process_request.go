package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"multi-agent-assistant/internal/middleware"
)

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	if req.SessionID == "" {
		req.SessionID = middleware.SessionID(c)
	}
	return req, req.validate()
}

func (h *handler) processAgentReq(c *gin.Context) (agentReq, error) {
	var req agentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, req.validate()
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, req.validate()
}

func (h *handler) processClearReq(c *gin.Context) (clearReq, error) {
	var req clearReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, req.validate()
}
