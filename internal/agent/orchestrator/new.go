package orchestrator

import (
	"sync"
	"time"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/memory"
	"multi-agent-assistant/internal/router"
	"multi-agent-assistant/pkg/llmprovider"
	pkgLog "multi-agent-assistant/pkg/log"
)

// Orchestrator routes one conversation's messages to handlers. Process
// calls are serialized, so a session answers one request at a time.
type Orchestrator struct {
	mu           sync.Mutex
	llm          llmprovider.Generator
	router       router.Router
	registry     *agent.Registry
	memory       *memory.Memory
	l            pkgLog.Logger
	contextTurns int
	now          func() time.Time
}

func New(cfg Config) *Orchestrator {
	if cfg.Registry == nil {
		cfg.Registry = agent.NewRegistry()
	}
	if cfg.Memory == nil {
		cfg.Memory = memory.New(memory.DefaultMaxTurns)
	}
	if cfg.Logger == nil {
		cfg.Logger = pkgLog.NewNop()
	}
	if cfg.ContextTurns <= 0 {
		cfg.ContextTurns = DefaultContextTurns
	}
	return &Orchestrator{
		llm:          cfg.LLM,
		router:       cfg.Router,
		registry:     cfg.Registry,
		memory:       cfg.Memory,
		l:            cfg.Logger,
		contextTurns: cfg.ContextTurns,
		now:          time.Now,
	}
}
