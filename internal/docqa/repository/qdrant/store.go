package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"multi-agent-assistant/internal/docqa/repository"
	"multi-agent-assistant/internal/model"
	pkgLog "multi-agent-assistant/pkg/log"
	pkgQdrant "multi-agent-assistant/pkg/qdrant"
)

// Payload keys
const (
	keyChunkID  = "chunk_id"
	keySource   = "source"
	keyPosition = "position"
	keyText     = "text"
)

type implRepository struct {
	client     *pkgQdrant.Client
	collection string
	vectorSize int
	l          pkgLog.Logger
}

var _ repository.VectorStore = (*implRepository)(nil)

// New creates a Qdrant-backed vector store.
func New(client *pkgQdrant.Client, collection string, vectorSize int, l pkgLog.Logger) *implRepository {
	return &implRepository{
		client:     client,
		collection: collection,
		vectorSize: vectorSize,
		l:          l,
	}
}

// Reset recreates the collection so a re-index never mixes documents.
func (r *implRepository) Reset(ctx context.Context) error {
	exists, err := r.client.CollectionExists(ctx, r.collection)
	if err != nil {
		return fmt.Errorf("check collection %s: %w", r.collection, err)
	}
	if exists {
		if err := r.client.DeleteCollection(ctx, r.collection); err != nil {
			return fmt.Errorf("drop collection %s: %w", r.collection, err)
		}
	}
	err = r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collection,
		Vectors: pkgQdrant.VectorConfig{Size: r.vectorSize, Distance: pkgQdrant.DistanceCosine},
	})
	if err != nil {
		return fmt.Errorf("create collection %s: %w", r.collection, err)
	}
	r.l.Infof(ctx, "qdrant repository: collection %s ready (size=%d)", r.collection, r.vectorSize)
	return nil
}

func (r *implRepository) Upsert(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("%w: %d chunks, %d vectors", repository.ErrLengthMismatch, len(chunks), len(vectors))
	}

	points := make([]pkgQdrant.Point, 0, len(chunks))
	for i, c := range chunks {
		points = append(points, pkgQdrant.Point{
			ID:     pointID(c.ID),
			Vector: vectors[i],
			Payload: map[string]any{
				keyChunkID:  c.ID,
				keySource:   c.Source,
				keyPosition: c.Position,
				keyText:     c.Text,
			},
		})
	}

	if err := r.client.UpsertPoints(ctx, r.collection, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "qdrant repository: failed to upsert %d points: %v", len(points), err)
		return fmt.Errorf("upsert points: %w", err)
	}
	return nil
}

func (r *implRepository) Search(ctx context.Context, vector []float32, k int) ([]model.Chunk, error) {
	resp, err := r.client.SearchPoints(ctx, r.collection, pkgQdrant.SearchRequest{
		Vector:      vector,
		Limit:       k,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search points: %w", err)
	}

	out := make([]model.Chunk, 0, len(resp.Result))
	for _, sp := range resp.Result {
		text, ok := sp.Payload[keyText].(string)
		if !ok {
			r.l.Warnf(ctx, "qdrant repository: point %v has no text payload", sp.ID)
			continue
		}
		c := model.Chunk{Text: text, Score: sp.Score}
		c.ID, _ = sp.Payload[keyChunkID].(string)
		c.Source, _ = sp.Payload[keySource].(string)
		if pos, ok := sp.Payload[keyPosition].(float64); ok {
			c.Position = int(pos)
		}
		out = append(out, c)
	}
	return out, nil
}

// pointID maps a chunk id to a stable UUID, since Qdrant rejects
// arbitrary string ids.
func pointID(chunkID string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(chunkID)).String()
}
