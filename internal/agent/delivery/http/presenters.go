package http

import (
	"fmt"
	"strings"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/agent/orchestrator"
	"multi-agent-assistant/internal/docqa"
	"multi-agent-assistant/internal/imagegen"
	"multi-agent-assistant/internal/memory"
	"multi-agent-assistant/internal/router"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Agent     string `json:"agent"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errMessageRequired
	}
	return nil
}

func (r chatReq) toInput() (orchestrator.ProcessInput, error) {
	in := orchestrator.ProcessInput{Message: strings.TrimSpace(r.Message)}
	if r.Agent == "" {
		return in, nil
	}
	label, ok := router.ParseLabel(r.Agent)
	if !ok {
		return in, fmt.Errorf("%w: %s", errUnknownAgent, r.Agent)
	}
	in.ForceLabel = label
	return in, nil
}

// agentReq is the body of the single-agent endpoints.
type agentReq struct {
	Message  string `json:"message"`
	Generate bool   `json:"generate"`
}

func (r agentReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errMessageRequired
	}
	return nil
}

// searchReq is the body of the raw retrieval endpoint. K defaults to
// the document Q&A top-k.
type searchReq struct {
	Message string `json:"message"`
	K       int    `json:"k"`
}

func (r searchReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errMessageRequired
	}
	if r.K < 0 || r.K > maxSearchK {
		return fmt.Errorf("%w: k must be between 0 and %d", errInvalidK, maxSearchK)
	}
	return nil
}

type clearReq struct {
	SessionID string `json:"session_id"`
}

func (r clearReq) validate() error {
	if strings.TrimSpace(r.SessionID) == "" {
		return errSessionIDRequired
	}
	return nil
}

// --- Response DTOs ---

type chatResp struct {
	SessionID string `json:"session_id"`
	orchestrator.Response
}

func newChatResp(id string, r orchestrator.Response) chatResp {
	return chatResp{SessionID: id, Response: r}
}

type agentResp struct {
	Success        bool   `json:"success"`
	Response       string `json:"response"`
	ImageURL       string `json:"image_url,omitempty"`
	EnhancedPrompt string `json:"enhanced_prompt,omitempty"`
}

func newAgentResp(res agent.Result) agentResp {
	if res.Error != "" {
		return agentResp{Response: "Error: " + res.Error}
	}
	return agentResp{Success: true, Response: res.Formatted}
}

type classifyResp struct {
	SessionID string `json:"session_id"`
	router.Classification
}

type clearResp struct {
	SessionID string `json:"session_id"`
	Cleared   bool   `json:"cleared"`
}

type historyResp struct {
	SessionID string              `json:"session_id"`
	Turns     []memory.Turn       `json:"turns"`
	RAGMemory []docqa.ChatMessage `json:"rag_memory,omitempty"`
}

type searchResp struct {
	Query  string   `json:"query"`
	Chunks []string `json:"chunks"`
}

type stylesResp struct {
	Styles []imagegen.Style `json:"styles"`
}

type agentsResp struct {
	Agents []agent.Descriptor `json:"agents"`
}

type capabilitiesResp struct {
	Capabilities string `json:"capabilities"`
}
