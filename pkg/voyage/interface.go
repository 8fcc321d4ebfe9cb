package voyage

import "context"

// IVoyage is the embeddings surface used by the document index.
// Implementations are safe for concurrent use.
type IVoyage interface {
	// Embed encodes texts that will be stored and searched against.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// EmbedQuery encodes a single search query.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}
