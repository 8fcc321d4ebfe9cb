package voyage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	DefaultModel   = "voyage-3" // 1024 dimensions
	DefaultTimeout = 30 * time.Second
)

// Client is the Voyage AI embedding API client.
type Client struct {
	baseURL string
	model   string
	client  *resty.Client
}

var _ IVoyage = (*Client)(nil)

// New creates a new Voyage AI client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("voyage: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client: resty.New().
			SetTimeout(cfg.Timeout).
			SetAuthToken(cfg.APIKey).
			SetHeader("Content-Type", "application/json"),
	}, nil
}

// Embed generates document embeddings for texts, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return c.embed(ctx, texts, InputTypeDocument)
}

// EmbedQuery generates the embedding for one search query.
func (c *Client) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	out, err := c.embed(ctx, []string{text}, InputTypeQuery)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

func (c *Client) embed(ctx context.Context, texts []string, inputType string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("voyage: no texts provided")
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(embedRequest{Input: texts, Model: c.model, InputType: inputType}).
		Post(c.baseURL + "/embeddings")
	if err != nil {
		return nil, fmt.Errorf("voyage: call embeddings: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail string `json:"detail"`
		}
		if json.Unmarshal(resp.Body(), &errResp) == nil {
			apiErr.Message = errResp.Error.Message
			if apiErr.Message == "" {
				apiErr.Message = errResp.Detail
			}
		}
		return nil, apiErr
	}

	var out embedResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("voyage: decode response: %w", err)
	}
	if len(out.Data) != len(texts) {
		return nil, fmt.Errorf("voyage: expected %d embeddings, got %d", len(texts), len(out.Data))
	}

	sort.Slice(out.Data, func(i, j int) bool {
		return out.Data[i].Index < out.Data[j].Index
	})
	embeddings := make([][]float32, len(out.Data))
	for i, d := range out.Data {
		embeddings[i] = d.Embedding
	}
	return embeddings, nil
}
