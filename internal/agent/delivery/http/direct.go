package http

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/docqa"
	"multi-agent-assistant/internal/imagegen"
	"multi-agent-assistant/internal/middleware"
	"multi-agent-assistant/internal/sqlquery"
	"multi-agent-assistant/pkg/response"
)

const (
	sqlResponseFormat     = "**Generated SQL:**\n```sql\n%s\n```\n\n**Results:**\n```\n%s\n```"
	previewResponseFormat = "**Your prompt:** %s\n\n**Enhanced prompt:**\n%s\n\n*Click 'Generate Image' to create this image (uses API credits)*"
	imageMarkdownFormat   = "\n\n![Generated Image](%s)"
)

// previewer is implemented by the image handler.
type previewer interface {
	Preview(ctx context.Context, query string) imagegen.PreviewOutput
}

// searcher and ragMemory are implemented by the document Q&A session.
type searcher interface {
	SemanticSearch(ctx context.Context, query string, k int) ([]string, error)
}

type ragMemory interface {
	MemoryContext() []docqa.ChatMessage
}

// SQL godoc
// @Summary     Ask the SQL agent
// @Description Bypasses routing. The response shows the generated statement and the result table.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body agentReq true "Question"
// @Success     200 {object} agentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sql [POST]
func (h *handler) SQL(c *gin.Context) {
	h.direct(c, agent.LabelSQL, func(req agentReq, hd agent.Handler) agentResp {
		res := hd.Handle(c.Request.Context(), req.Message)
		out := newAgentResp(res)
		if sq, ok := res.Payload.(sqlquery.Output); ok && res.Error == "" {
			out.Response = fmt.Sprintf(sqlResponseFormat, sq.SQL, sq.Formatted)
		}
		return out
	})
}

// RAG godoc
// @Summary     Ask the handbook
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string   false "Session id"
// @Param       body         body   agentReq true  "Question"
// @Success     200 {object} agentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/rag [POST]
func (h *handler) RAG(c *gin.Context) {
	h.direct(c, agent.LabelDocumentQA, h.handle(c))
}

// Weather godoc
// @Summary     Ask the weather agent
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body agentReq true "Question"
// @Success     200 {object} agentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/weather [POST]
func (h *handler) Weather(c *gin.Context) {
	h.direct(c, agent.LabelWeather, h.handle(c))
}

// Recommender godoc
// @Summary     Ask for event recommendations
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body agentReq true "Question"
// @Success     200 {object} agentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/recommender [POST]
func (h *handler) Recommender(c *gin.Context) {
	h.direct(c, agent.LabelRecommend, h.handle(c))
}

// Image godoc
// @Summary     Preview or generate an image
// @Description Without generate the prompt is only enhanced, which costs no image credits.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body agentReq true "Prompt"
// @Success     200 {object} agentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/image [POST]
func (h *handler) Image(c *gin.Context) {
	ctx := c.Request.Context()

	h.direct(c, agent.LabelImage, func(req agentReq, hd agent.Handler) agentResp {
		if !req.Generate {
			p, ok := hd.(previewer)
			if !ok {
				return agentResp{Response: "Error: " + errAgentUnavailable.Error()}
			}
			pv := p.Preview(ctx, req.Message)
			return agentResp{
				Success:        true,
				Response:       fmt.Sprintf(previewResponseFormat, req.Message, pv.Enhanced),
				EnhancedPrompt: pv.Enhanced,
			}
		}

		res := hd.Handle(ctx, req.Message)
		out := newAgentResp(res)
		if img, ok := res.Payload.(imagegen.Output); ok && res.Error == "" && img.ImageURL != "" {
			out.ImageURL = img.ImageURL
			out.Response += fmt.Sprintf(imageMarkdownFormat, img.ImageURL)
		}
		return out
	})
}

func (h *handler) handle(c *gin.Context) func(agentReq, agent.Handler) agentResp {
	return func(req agentReq, hd agent.Handler) agentResp {
		return newAgentResp(hd.Handle(c.Request.Context(), req.Message))
	}
}

// direct resolves the session's handler for label and writes run's result.
func (h *handler) direct(c *gin.Context, label agent.Label, run func(agentReq, agent.Handler) agentResp) {
	req, err := h.processAgentReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	hd, ok := h.sessions.Get(middleware.SessionID(c)).Registry().Get(label)
	if !ok {
		h.mapError(c, fmt.Errorf("%w: %s", errAgentUnavailable, label))
		return
	}

	out := run(req, hd)
	if !out.Success {
		h.l.Warnf(c.Request.Context(), "agent.http.direct: %s: %s", label, out.Response)
	}
	response.OK(c, out)
}

// RAGSearch godoc
// @Summary     Raw handbook retrieval
// @Description Returns the chunks closest to the message without asking the model.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Query"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/rag/search [POST]
func (h *handler) RAGSearch(c *gin.Context) {
	ctx := c.Request.Context()
	req, err := h.processSearchReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	hd, ok := h.sessions.Get(middleware.SessionID(c)).Registry().Get(agent.LabelDocumentQA)
	s, isSearcher := hd.(searcher)
	if !ok || !isSearcher {
		h.mapError(c, fmt.Errorf("%w: %s", errAgentUnavailable, agent.LabelDocumentQA))
		return
	}

	chunks, err := s.SemanticSearch(ctx, req.Message, req.K)
	if err != nil {
		h.l.Warnf(ctx, "agent.http.RAGSearch: %v", err)
		h.mapError(c, err)
		return
	}
	response.OK(c, searchResp{Query: req.Message, Chunks: chunks})
}

// ImageStyles godoc
// @Summary     Image styles
// @Description Styles the image agent recognises in a prompt, in match order.
// @Tags        Agents
// @Produce     json
// @Success     200 {object} stylesResp
// @Router      /api/v1/image/styles [GET]
func (h *handler) ImageStyles(c *gin.Context) {
	response.OK(c, stylesResp{Styles: imagegen.Styles()})
}
