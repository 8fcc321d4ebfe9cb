package http

import (
	"multi-agent-assistant/internal/agent/orchestrator"
	"multi-agent-assistant/pkg/log"
)

// Sessions is the session store the handlers read from.
type Sessions interface {
	Get(id string) *orchestrator.Orchestrator
	Lookup(id string) (*orchestrator.Orchestrator, bool)
	Clear(id string) bool
	Allow(id string) error
}

type handler struct {
	l        log.Logger
	sessions Sessions
}

// New creates the HTTP handler for the assistant endpoints.
func New(l log.Logger, sessions Sessions) *handler {
	return &handler{
		l:        l,
		sessions: sessions,
	}
}
