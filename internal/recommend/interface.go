package recommend

import (
	"context"

	"multi-agent-assistant/internal/agent"
)

// UseCase recommends events by combining current weather with the
// events calendar.
type UseCase interface {
	agent.Handler

	// Recommend runs the lookup and synthesis for explicit parameters.
	Recommend(ctx context.Context, input Input) Output
}
