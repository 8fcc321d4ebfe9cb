package voyage

import (
	"fmt"
	"time"
)

// Voyage tunes vectors differently for stored text and for queries.
const (
	InputTypeDocument = "document"
	InputTypeQuery    = "query"
)

// Config configures the Voyage client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type embedRequest struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type,omitempty"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("voyage API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("voyage API error (%d): %s", e.StatusCode, e.Message)
}
