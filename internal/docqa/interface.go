package docqa

import (
	"context"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/model"
)

// Embedder turns texts into vectors. Both the OpenAI and Voyage clients
// satisfy it.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// QueryEmbedder is implemented by embedders that encode search queries
// differently from stored documents.
type QueryEmbedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Index is the shared, lazily rebuilt vector index over the source
// document.
type Index interface {
	// Initialize loads, splits, embeds and stores the document. It is a
	// no-op once the index is ready.
	Initialize(ctx context.Context) error
	Ready() bool
	// Chunks is the number of stored chunks, 0 until ready.
	Chunks() int
	Search(ctx context.Context, query string, k int) ([]model.Chunk, error)
}

// Session answers questions against the index with its own rolling chat
// window. One Session belongs to one conversation.
type Session interface {
	agent.Handler
	agent.Resetter

	Ask(ctx context.Context, question string) Output
	MemoryContext() []ChatMessage
	SemanticSearch(ctx context.Context, query string, k int) ([]string, error)
}
