package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client talks to an OpenAI compatible REST API.
type Client struct {
	apiKey         string
	baseURL        string
	chatModel      string
	embeddingModel string
	imageModel     string
	client         *resty.Client
}

var _ IOpenAI = (*Client)(nil)

// New creates a new client. Empty fields take the package defaults.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = DefaultChatModel
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = DefaultEmbeddingModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultImageModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &Client{
		apiKey:         cfg.APIKey,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		chatModel:      cfg.ChatModel,
		embeddingModel: cfg.EmbeddingModel,
		imageModel:     cfg.ImageModel,
		client:         client,
	}, nil
}

// ChatModel returns the default completion model.
func (c *Client) ChatModel() string {
	return c.chatModel
}

// ChatCompletion sends a chat completion request.
func (c *Client) ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if req.Model == "" {
		req.Model = c.chatModel
	}

	var result ChatResponse
	if err := c.post(ctx, pathChatCompletions, req, &result); err != nil {
		return nil, err
	}
	if len(result.Choices) == 0 {
		return nil, ErrEmptyResponse
	}
	return &result, nil
}

// Embed returns one vector per input text, in input order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("openai: no texts provided")
	}

	var result EmbeddingResponse
	err := c.post(ctx, pathEmbeddings, &EmbeddingRequest{Model: c.embeddingModel, Input: texts}, &result)
	if err != nil {
		return nil, err
	}
	if len(result.Data) != len(texts) {
		return nil, fmt.Errorf("openai: expected %d embeddings, got %d", len(texts), len(result.Data))
	}

	sort.Slice(result.Data, func(i, j int) bool {
		return result.Data[i].Index < result.Data[j].Index
	})
	embeddings := make([][]float32, len(result.Data))
	for i, d := range result.Data {
		embeddings[i] = d.Embedding
	}
	return embeddings, nil
}

// GenerateImage requests image generation and returns the hosted URLs.
func (c *Client) GenerateImage(ctx context.Context, req *ImageRequest) (*ImageResponse, error) {
	if req.Model == "" {
		req.Model = c.imageModel
	}
	if req.N == 0 {
		req.N = 1
	}

	var result ImageResponse
	if err := c.post(ctx, pathImageGenerations, req, &result); err != nil {
		return nil, err
	}
	if len(result.Data) == 0 {
		return nil, ErrEmptyResponse
	}
	return &result, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("openai: call %s: %w", path, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return newAPIError(resp.StatusCode(), resp.Body())
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("openai: parse %s response: %w", path, err)
	}
	return nil
}
