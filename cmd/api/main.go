package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"multi-agent-assistant/config"
	_ "multi-agent-assistant/docs" // Swagger docs
	"multi-agent-assistant/internal/app"
	"multi-agent-assistant/internal/httpserver"
	"multi-agent-assistant/pkg/log"
)

// @title       Multi-Agent Assistant API
// @description Routes natural-language requests to SQL, handbook Q&A, weather, event recommendation and image agents.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Multi-Agent Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Backends and sessions
	assistant, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize assistant: ", err)
		return
	}
	defer func() {
		if err := assistant.Close(); err != nil {
			logger.Warnf(ctx, "Close: %v", err)
		}
	}()

	go func() {
		if err := assistant.WarmUp(ctx); err != nil {
			logger.Warnf(ctx, "Handbook index not built: %v", err)
			return
		}
		logger.Info(ctx, "Handbook index ready")
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		AllowedOrigins: cfg.HTTPServer.AllowedOrigins,
		Sessions:       assistant.Sessions(),
		ReadyCheck:     assistant.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
