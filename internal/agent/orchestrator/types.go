package orchestrator

import (
	"time"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/memory"
	"multi-agent-assistant/internal/router"
	"multi-agent-assistant/pkg/llmprovider"
	pkgLog "multi-agent-assistant/pkg/log"
)

// Config wires an orchestrator. Memory is required; the others may be
// nil, in which case routing and general chat degrade to errors.
type Config struct {
	LLM      llmprovider.Generator
	Router   router.Router
	Registry *agent.Registry
	Memory   *memory.Memory
	Logger   pkgLog.Logger

	// ContextTurns is how many past turns feed the router and the
	// general completion. Zero means DefaultContextTurns.
	ContextTurns int
}

// ProcessInput is one user message. ForceLabel skips classification.
type ProcessInput struct {
	Message    string
	ForceLabel agent.Label
}

// Response is the envelope returned for every processed message.
type Response struct {
	Input          string                `json:"user_input"`
	Timestamp      time.Time             `json:"timestamp"`
	Classification router.Classification `json:"intent"`
	Label          agent.Label           `json:"agent_used"`
	Result         agent.Result          `json:"result"`
	Display        string                `json:"formatted_response"`
	Error          string                `json:"error,omitempty"`
}
