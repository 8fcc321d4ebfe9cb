package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"multi-agent-assistant/config"
	"multi-agent-assistant/internal/app"
	"multi-agent-assistant/pkg/log"
)

var logLevel string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "assistant",
		Short:         "Multi-agent assistant for company data, handbook, weather, events and images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level for backend diagnostics")

	root.AddCommand(newChatCmd(), newAskCmd(), newSeedCmd())
	return root
}

// bootstrap loads configuration and builds the assistant. The caller must
// Close the returned app.
func bootstrap(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        logLevel,
		Mode:         cfg.Logger.Mode,
		Encoding:     log.EncodingConsole,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	return app.New(ctx, cfg, logger)
}
