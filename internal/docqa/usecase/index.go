package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"multi-agent-assistant/internal/docqa"
	"multi-agent-assistant/internal/docqa/repository"
	"multi-agent-assistant/internal/model"
	pkgLog "multi-agent-assistant/pkg/log"
)

type implIndex struct {
	l        pkgLog.Logger
	embedder docqa.Embedder
	store    repository.VectorStore
	splitter docqa.Splitter
	path     string

	mu     sync.RWMutex
	ready  bool
	chunks int
}

var _ docqa.Index = (*implIndex)(nil)

// NewIndex creates an index over cfg.DocumentPath. Nothing is loaded
// until Initialize.
func NewIndex(l pkgLog.Logger, embedder docqa.Embedder, store repository.VectorStore, cfg docqa.IndexConfig) *implIndex {
	if cfg.DocumentPath == "" {
		cfg.DocumentPath = docqa.DefaultDocumentPath
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = docqa.DefaultChunkSize
	}
	if cfg.ChunkOverlap <= 0 {
		cfg.ChunkOverlap = docqa.DefaultChunkOverlap
	}
	return &implIndex{
		l:        l,
		embedder: embedder,
		store:    store,
		splitter: docqa.NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap),
		path:     cfg.DocumentPath,
	}
}

func (ix *implIndex) Ready() bool {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.ready
}

// Chunks returns how many chunks the last successful Initialize stored.
func (ix *implIndex) Chunks() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.chunks
}

func (ix *implIndex) Initialize(ctx context.Context) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.ready {
		return nil
	}

	raw, err := os.ReadFile(ix.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ix.l.Warnf(ctx, "%s: document not found: %s", docqa.LogPrefixInitialize, ix.path)
			return fmt.Errorf("%w: %s", docqa.ErrDocumentMissing, ix.path)
		}
		return fmt.Errorf("read %s: %w", ix.path, err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return fmt.Errorf("%w: %s", docqa.ErrEmptyDocument, ix.path)
	}

	source := filepath.Base(ix.path)
	texts := ix.splitter.Split(string(raw))
	chunks := make([]model.Chunk, len(texts))
	for i, t := range texts {
		chunks[i] = model.Chunk{
			ID:       fmt.Sprintf("%s#%d", source, i),
			Source:   source,
			Position: i,
			Text:     t,
		}
	}

	vectors, err := ix.embed(ctx, texts)
	if err != nil {
		return err
	}

	if err := ix.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset vector store: %w", err)
	}
	if err := ix.store.Upsert(ctx, chunks, vectors); err != nil {
		return fmt.Errorf("store chunks: %w", err)
	}

	ix.ready = true
	ix.chunks = len(chunks)
	ix.l.Infof(ctx, "%s: indexed %s with %d document chunks", docqa.LogPrefixInitialize, ix.path, len(chunks))
	return nil
}

// embed runs the embedder in batches of EmbedBatchSize.
func (ix *implIndex) embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += docqa.EmbedBatchSize {
		end := min(start+docqa.EmbedBatchSize, len(texts))

		batch, err := ix.embedder.Embed(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("embed batch %d-%d: %w", start, end, err)
		}
		if len(batch) != end-start {
			return nil, fmt.Errorf("%w: got %d, expected %d", docqa.ErrEmbeddingCount, len(batch), end-start)
		}
		vectors = append(vectors, batch...)
	}
	return vectors, nil
}

func (ix *implIndex) Search(ctx context.Context, query string, k int) ([]model.Chunk, error) {
	if !ix.Ready() {
		return nil, docqa.ErrNotInitialized
	}
	if k <= 0 {
		k = docqa.DefaultTopK
	}

	vector, err := ix.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.store.Search(ctx, vector, k)
}

func (ix *implIndex) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if qe, ok := ix.embedder.(docqa.QueryEmbedder); ok {
		vector, err := qe.EmbedQuery(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("embed query: %w", err)
		}
		return vector, nil
	}

	vectors, err := ix.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("%w: got 0, expected 1", docqa.ErrEmbeddingCount)
	}
	return vectors[0], nil
}
