package router

import "multi-agent-assistant/internal/agent"

// Classification is the router's verdict for one message.
type Classification struct {
	Label      agent.Label `json:"agent"`
	Confidence float64     `json:"confidence"` // 0-1
	Reasoning  string      `json:"reasoning"`
}

// rawOutput is the JSON the model is asked to produce. Confidence is
// decoded loosely since models emit both 0.9 and 90.
type rawOutput struct {
	Agent      string  `json:"agent"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}
