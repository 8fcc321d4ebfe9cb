package qdrant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultTimeout = 30 * time.Second

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL string
	client  *resty.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: resty.New().
			SetTimeout(DefaultTimeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// CollectionExists reports whether a collection is present.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	resp, err := c.client.R().SetContext(ctx).Get(c.collectionURL(name))
	if err != nil {
		return false, fmt.Errorf("failed to call qdrant API: %w", err)
	}
	switch resp.StatusCode() {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	}
	return false, fmt.Errorf("qdrant API error: %d", resp.StatusCode())
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	return c.do(ctx, http.MethodPut, c.collectionURL(req.Name), req, nil, http.StatusOK, http.StatusCreated)
}

// DeleteCollection drops a collection. A missing collection is not an error.
func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodDelete, c.collectionURL(name), nil, nil, http.StatusOK, http.StatusNotFound)
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	return c.do(ctx, http.MethodPut, c.collectionURL(collectionName)+"/points?wait=true", req, nil, http.StatusOK)
}

// SearchPoints performs semantic search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, c.collectionURL(collectionName)+"/points/search", req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) collectionURL(name string) string {
	return fmt.Sprintf("%s/collections/%s", c.baseURL, name)
}

func (c *Client) do(ctx context.Context, method, url string, body, out any, okStatus ...int) error {
	req := c.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}

	ok := false
	for _, s := range okStatus {
		if resp.StatusCode() == s {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode())
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
