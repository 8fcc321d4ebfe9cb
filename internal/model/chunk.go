package model

// Chunk is a slice of a source document stored in the vector index.
type Chunk struct {
	ID       string  `json:"id"`
	Source   string  `json:"source"`
	Position int     `json:"position"`
	Text     string  `json:"text"`
	Score    float64 `json:"score,omitempty"`
}
