// Package memory is an in-process vector store ranked by cosine
// similarity.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"multi-agent-assistant/internal/docqa/repository"
	"multi-agent-assistant/internal/model"
)

type entry struct {
	chunk  model.Chunk
	vector []float32
	norm   float64
}

type implRepository struct {
	mu        sync.RWMutex
	entries   []entry
	dimension int
}

var _ repository.VectorStore = (*implRepository)(nil)

func New() *implRepository {
	return &implRepository{}
}

func (r *implRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
	r.dimension = 0
	return nil
}

func (r *implRepository) Upsert(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("%w: %d chunks, %d vectors", repository.ErrLengthMismatch, len(chunks), len(vectors))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dim := r.dimension
	if dim == 0 && len(vectors) > 0 {
		dim = len(vectors[0])
	}
	for _, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("%w: got %d, want %d", repository.ErrDimensionMismatch, len(v), dim)
		}
	}
	r.dimension = dim

	byID := make(map[string]int, len(r.entries))
	for i, e := range r.entries {
		byID[e.chunk.ID] = i
	}

	for i, c := range chunks {
		v := vectors[i]
		e := entry{chunk: c, vector: v, norm: norm(v)}
		if idx, ok := byID[c.ID]; ok {
			r.entries[idx] = e
			continue
		}
		byID[c.ID] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return nil
}

func (r *implRepository) Search(ctx context.Context, vector []float32, k int) ([]model.Chunk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 || k <= 0 {
		return []model.Chunk{}, nil
	}
	if len(vector) != r.dimension {
		return nil, fmt.Errorf("%w: got %d, want %d", repository.ErrDimensionMismatch, len(vector), r.dimension)
	}

	qn := norm(vector)
	results := make([]model.Chunk, 0, len(r.entries))
	for _, e := range r.entries {
		c := e.chunk
		c.Score = cosine(vector, e.vector, qn, e.norm)
		results = append(results, c)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

func cosine(a, b []float32, na, nb float64) float64 {
	if na == 0 || nb == 0 {
		return 0
	}
	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}
	return dot / (na * nb)
}
