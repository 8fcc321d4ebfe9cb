package http

import (
	"github.com/gin-gonic/gin"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/agent/orchestrator"
	"multi-agent-assistant/internal/middleware"
	"multi-agent-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a message to the assistant
// @Description Classifies the message (unless agent is set), routes it to a handler and records the turn in the session's memory.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string  false "Session id"
// @Param       body         body   chatReq true  "Message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		h.mapError(c, err)
		return
	}

	if req.SessionID != middleware.SessionID(c) {
		if err := h.sessions.Allow(req.SessionID); err != nil {
			h.mapError(c, err)
			return
		}
	}

	out := h.sessions.Get(req.SessionID).Process(ctx, input)
	if out.Error != "" {
		h.l.Warnf(ctx, "agent.http.Chat: %s: %s", out.Label, out.Error)
	}

	response.OK(c, newChatResp(req.SessionID, out))
}

// Classify godoc
// @Summary     Classify a message
// @Description Returns the label the router would pick, using the session's recent turns as context. Nothing is executed or recorded.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string   false "Session id"
// @Param       body         body   agentReq true  "Message"
// @Success     200 {object} classifyResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	req, err := h.processAgentReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	id := middleware.SessionID(c)
	cls := h.sessions.Get(id).Classify(c.Request.Context(), req.Message)
	response.OK(c, classifyResp{SessionID: id, Classification: cls})
}

// ClearSession godoc
// @Summary     Clear a session's memory
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       body body clearReq true "Session"
// @Success     200 {object} clearResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/sessions/clear [POST]
func (h *handler) ClearSession(c *gin.Context) {
	req, err := h.processClearReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, clearResp{
		SessionID: req.SessionID,
		Cleared:   h.sessions.Clear(req.SessionID),
	})
}

// History godoc
// @Summary     Conversation history
// @Description Returns the turns remembered for a session, oldest first.
// @Tags        Sessions
// @Produce     json
// @Param       id path string true "Session id"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/history [GET]
func (h *handler) History(c *gin.Context) {
	id := c.Param("id")
	sess, ok := h.sessions.Lookup(id)
	if !ok {
		h.mapError(c, errSessionNotFound)
		return
	}

	resp := historyResp{SessionID: id, Turns: sess.History()}
	if hd, ok := sess.Registry().Get(agent.LabelDocumentQA); ok {
		if rm, ok := hd.(ragMemory); ok {
			resp.RAGMemory = rm.MemoryContext()
		}
	}
	response.OK(c, resp)
}

// Agents godoc
// @Summary     List agents
// @Description Returns the handlers available to the session with sample requests.
// @Tags        Catalogue
// @Produce     json
// @Success     200 {object} agentsResp
// @Router      /api/v1/agents [GET]
func (h *handler) Agents(c *gin.Context) {
	reg := h.sessions.Get(middleware.SessionID(c)).Registry()
	response.OK(c, agentsResp{Agents: reg.Describe()})
}

// Capabilities godoc
// @Summary     Capability overview
// @Tags        Catalogue
// @Produce     json
// @Success     200 {object} capabilitiesResp
// @Router      /api/v1/capabilities [GET]
func (h *handler) Capabilities(c *gin.Context) {
	response.OK(c, capabilitiesResp{Capabilities: orchestrator.CapabilitiesText})
}
