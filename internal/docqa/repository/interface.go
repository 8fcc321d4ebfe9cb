package repository

import (
	"context"

	"multi-agent-assistant/internal/model"
)

// VectorStore persists document chunks with their embeddings.
type VectorStore interface {
	// Reset drops everything previously stored.
	Reset(ctx context.Context) error
	Upsert(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error
	// Search returns the k nearest chunks, best first, with Score set.
	Search(ctx context.Context, vector []float32, k int) ([]model.Chunk, error)
}
