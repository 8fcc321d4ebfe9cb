// Package gemini is a small client for the Gemini generateContent API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// IGemini is the part of the API the assistant uses.
type IGemini interface {
	GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
	Model() string
}

// Client is safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *resty.Client
}

var _ IGemini = (*Client)(nil)

// New creates a new client. Empty fields take the package defaults.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
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
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Content-Type", "application/json"),
	}, nil
}

func (c *Client) Model() string {
	return c.model
}

// GenerateContent calls models/{model}:generateContent.
func (c *Client) GenerateContent(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(req).
		Post(fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model))
	if err != nil {
		return nil, fmt.Errorf("gemini: call API: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, newAPIError(resp.StatusCode(), resp.Body())
	}

	var out GenerateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return nil, ErrEmptyResponse
	}
	return &out, nil
}

// Text joins the text parts of the first candidate.
func (r *GenerateResponse) Text() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}
