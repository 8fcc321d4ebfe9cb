package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	agentHTTP "multi-agent-assistant/internal/agent/delivery/http"
	"multi-agent-assistant/internal/middleware"
)

const environmentProduction = "production"

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.sessions, srv.origins)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Logger(), mw.Recover(), mw.CORS())

	ctx := context.Background()
	if srv.environment == environmentProduction {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.origins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	h := agentHTTP.New(srv.l, srv.sessions)
	agentHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), h, mw)
	srv.l.Infof(ctx, "Assistant routes registered under /api/v1")

	return nil
}
