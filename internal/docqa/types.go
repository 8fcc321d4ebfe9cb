package docqa

// ChatMessage is one entry of the session chat window.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Output struct {
	Answer    string   `json:"answer"`
	Formatted string   `json:"formatted"`
	Sources   []string `json:"sources"`
	Error     string   `json:"error,omitempty"`
}

// IndexConfig configures NewIndex.
type IndexConfig struct {
	DocumentPath string
	ChunkSize    int
	ChunkOverlap int
}

// SessionConfig configures NewSession.
type SessionConfig struct {
	TopK         int
	MemoryWindow int
	Temperature  float64
}
