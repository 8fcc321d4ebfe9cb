package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/memory"
	"multi-agent-assistant/internal/router"
	"multi-agent-assistant/pkg/llmprovider"
)

var errNoLLM = errors.New("no language model configured")

// Process classifies the message (unless a label is forced), runs the
// matching handler and records the turn in memory. It never fails; problems
// surface in Response.Error and Result.Error.
func (o *Orchestrator) Process(ctx context.Context, in ProcessInput) Response {
	o.mu.Lock()
	defer o.mu.Unlock()

	resp := Response{
		Input:     in.Message,
		Timestamp: o.now(),
	}

	resp.Classification = o.classify(ctx, in)
	resp.Label = resp.Classification.Label

	resp.Result = o.route(ctx, resp.Label, in.Message)
	resp.Display = display(resp.Result)
	resp.Error = resp.Result.Error

	o.l.Debugf(ctx, "%s: label=%s confidence=%.2f", LogPrefixProcess, resp.Label, resp.Classification.Confidence)

	o.memory.AddTurn(in.Message, resp.Display, string(resp.Label))
	return resp
}

// Classify runs the router against the session's recent context without
// dispatching or recording anything.
func (o *Orchestrator) Classify(ctx context.Context, message string) router.Classification {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.classify(ctx, ProcessInput{Message: message})
}

func (o *Orchestrator) classify(ctx context.Context, in ProcessInput) router.Classification {
	if in.ForceLabel != "" {
		return router.Classification{
			Label:      in.ForceLabel,
			Confidence: ForcedConfidence,
			Reasoning:  ForcedReasoning,
		}
	}
	if o.router == nil {
		return router.Classification{
			Label:     agent.LabelGeneral,
			Reasoning: "Classification error: no router configured",
		}
	}
	return o.router.Classify(ctx, in.Message, o.memory.Context(o.contextTurns))
}

func (o *Orchestrator) route(ctx context.Context, label agent.Label, message string) agent.Result {
	if label != agent.LabelGeneral {
		if h, ok := o.registry.Get(label); ok {
			return h.Handle(ctx, message)
		}
	}
	return o.general(ctx, message)
}

// general answers conversation that no handler claims.
func (o *Orchestrator) general(ctx context.Context, message string) agent.Result {
	if o.llm == nil {
		return agent.Result{Formatted: "Error: " + errNoLLM.Error(), Error: errNoLLM.Error()}
	}

	user := fmt.Sprintf(PromptGeneralUser, o.memory.Context(o.contextTurns), message)
	resp, err := o.llm.GenerateContent(ctx, llmprovider.NewTextRequest(PromptGeneralSystem, user, GeneralTemperature, GeneralMaxTokens))
	if err != nil {
		o.l.Warnf(ctx, "%s: completion failed: %v", LogPrefixGeneral, err)
		return agent.Result{Formatted: "Error: " + err.Error(), Error: err.Error()}
	}

	answer := resp.Text()
	return agent.Result{Formatted: answer, Payload: map[string]string{"answer": answer}}
}

func display(r agent.Result) string {
	switch {
	case r.Formatted != "":
		return r.Formatted
	case r.Error != "":
		return "Error: " + r.Error
	case r.Payload != nil:
		return fmt.Sprintf("%v", r.Payload)
	}
	return ""
}

// ClearMemory forgets the conversation, including any handler-held history.
func (o *Orchestrator) ClearMemory() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.memory.Clear()
	for _, h := range o.registry.Handlers() {
		if r, ok := h.(agent.Resetter); ok {
			r.Reset()
		}
	}
}

func (o *Orchestrator) History() []memory.Turn {
	return o.memory.History()
}

// Registry exposes the handlers this orchestrator routes to.
func (o *Orchestrator) Registry() *agent.Registry {
	return o.registry
}

func (o *Orchestrator) Capabilities() string {
	return CapabilitiesText
}
