package qdrant

// Distance metrics accepted by VectorConfig.
const (
	DistanceCosine = "Cosine"
	DistanceDot    = "Dot"
	DistanceEuclid = "Euclid"
)

// CreateCollectionRequest is the body of PUT /collections/{name}. Name
// travels in the URL.
type CreateCollectionRequest struct {
	Name    string       `json:"-"`
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig must match the embedder: 1536 for ada-002, 1024 for voyage-3.
type VectorConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"`
}

// Point is one stored vector. Qdrant only accepts UUID strings or
// unsigned integers as ids.
type Point struct {
	ID      any            `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload"`
}

type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

type SearchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
}

type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

type ScoredPoint struct {
	ID      any            `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}
