package router

import (
	"context"

	"multi-agent-assistant/pkg/llmprovider"
	"multi-agent-assistant/pkg/log"
)

// Router is the interface for semantic routing
type Router interface {
	// Classify never fails; errors degrade to the general label.
	Classify(ctx context.Context, message string, conversationContext string) Classification
}

// SemanticRouter classifies user intent using an LLM
type SemanticRouter struct {
	llm llmprovider.Generator
	l   log.Logger
}

var _ Router = (*SemanticRouter)(nil)

// New creates a new SemanticRouter
func New(llm llmprovider.Generator, l log.Logger) *SemanticRouter {
	return &SemanticRouter{
		llm: llm,
		l:   l,
	}
}
