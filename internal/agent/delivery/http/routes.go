package http

import (
	"github.com/gin-gonic/gin"

	"multi-agent-assistant/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints under rg. Every route resolves
// a session id first; message-carrying routes are also rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.Session())

	chat := rg.Group("/chat", mw.RateLimit())
	{
		chat.POST("", h.Chat)
		chat.POST("/classify", h.Classify)
		chat.POST("/sql", h.SQL)
		chat.POST("/rag", h.RAG)
		chat.POST("/rag/search", h.RAGSearch)
		chat.POST("/weather", h.Weather)
		chat.POST("/recommender", h.Recommender)
		chat.POST("/image", h.Image)
	}

	sessions := rg.Group("/sessions")
	{
		sessions.POST("/clear", h.ClearSession)
		sessions.GET("/:id/history", h.History)
	}

	rg.GET("/agents", h.Agents)
	rg.GET("/capabilities", h.Capabilities)
	rg.GET("/image/styles", h.ImageStyles)
}
