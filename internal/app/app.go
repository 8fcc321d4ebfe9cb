// Package app assembles the assistant from configuration. Both the HTTP
// server and the CLI build on it.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"multi-agent-assistant/config"
	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/agent/orchestrator"
	"multi-agent-assistant/internal/agent/session"
	"multi-agent-assistant/internal/docqa"
	docqaUC "multi-agent-assistant/internal/docqa/usecase"
	"multi-agent-assistant/internal/memory"
	"multi-agent-assistant/internal/router"
	"multi-agent-assistant/pkg/llmprovider"
	pkgLog "multi-agent-assistant/pkg/log"
)

// App owns the shared backends. Per-conversation state lives in the
// orchestrators it builds.
type App struct {
	cfg *config.Config
	l   pkgLog.Logger

	llm      llmprovider.Generator
	router   router.Router
	handlers []agent.Handler
	index    docqa.Index

	sessions *session.Manager

	// unavailable names backends that failed to start.
	unavailable []error
	closers     []func() error
}

// New wires every backend. Optional backends that fail to start are logged
// and left out; their labels then fall through to general conversation.
func New(ctx context.Context, cfg *config.Config, l pkgLog.Logger) (*App, error) {
	a := &App{cfg: cfg, l: l}

	llm, err := newLLM(cfg, l)
	if err != nil {
		return nil, err
	}
	a.llm = llm
	a.router = router.New(llm, l)

	a.setupSQL(ctx)
	a.setupRecommendAndWeather(ctx)
	a.setupImage(ctx)
	a.setupDocQA(ctx)

	a.sessions = session.New(session.Config{
		MaxSessions:     cfg.Session.MaxSessions,
		TTL:             parseDuration(cfg.Session.TTL, session.DefaultTTL),
		RateLimitPerMin: cfg.Session.RateLimitPerMin,
	}, a.NewOrchestrator)

	return a, nil
}

func newLLM(cfg *config.Config, l pkgLog.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	m := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, l)
	for i, p := range m.Providers() {
		l.Infof(context.Background(), "internal.app.newLLM: provider %d: %s (%s)", i+1, p.Name(), p.Model())
	}
	return m, nil
}

// NewOrchestrator builds a conversation with its own memory and, when the
// handbook index is available, its own document Q&A window.
func (a *App) NewOrchestrator(id string) *orchestrator.Orchestrator {
	reg := agent.NewRegistry()
	for _, h := range a.handlers {
		reg.Register(h)
	}
	if a.index != nil {
		reg.Register(docqaUC.NewSession(a.l, a.llm, a.index, docqa.SessionConfig{
			TopK:         a.cfg.RAG.TopK,
			MemoryWindow: a.cfg.RAG.MemoryWindow,
			Temperature:  a.cfg.RAG.Temperature,
		}))
	}

	return orchestrator.New(orchestrator.Config{
		LLM:          a.llm,
		Router:       a.router,
		Registry:     reg,
		Memory:       memory.New(a.cfg.Memory.MaxTurns),
		Logger:       a.l,
		ContextTurns: a.cfg.Memory.ContextTurns,
	})
}

func (a *App) Sessions() *session.Manager {
	return a.sessions
}

// WarmUp builds the handbook index ahead of the first question.
func (a *App) WarmUp(ctx context.Context) error {
	if a.index == nil {
		return nil
	}
	if err := a.index.Initialize(ctx); err != nil {
		return err
	}
	a.l.Infof(ctx, "internal.app.WarmUp: document index ready with %d chunks", a.index.Chunks())
	return nil
}

// Ready reports the backends that failed to start.
func (a *App) Ready() error {
	return errors.Join(a.unavailable...)
}

// Close releases database handles.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (a *App) disable(ctx context.Context, name string, err error) {
	a.l.Warnf(ctx, "internal.app: %s unavailable: %v", name, err)
	a.unavailable = append(a.unavailable, fmt.Errorf("%s: %w", name, err))
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
