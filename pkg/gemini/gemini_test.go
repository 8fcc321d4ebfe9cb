package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresKey(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateContent(t *testing.T) {
	var got GenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Hello "}, {"text": "there"}]}}],
			"usageMetadata": {"promptTokenCount": 4, "candidatesTokenCount": 2, "totalTokenCount": 6}
		}`))
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "k", BaseURL: srv.URL, Model: "gemini-test"})
	require.NoError(t, err)

	resp, err := c.GenerateContent(context.Background(), &GenerateRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: "be brief"}}},
		Contents:          []Content{{Role: RoleUser, Parts: []Part{{Text: "hi"}}}},
		GenerationConfig:  &GenerationConfig{Temperature: 0.3, MaxOutputTokens: 20},
	})
	require.NoError(t, err)

	assert.Equal(t, "be brief", got.SystemInstruction.Parts[0].Text)
	assert.Equal(t, 20, got.GenerationConfig.MaxOutputTokens)
	assert.Equal(t, "Hello there", resp.Text())
	assert.Equal(t, 6, resp.UsageMetadata.TotalTokenCount)
}

func TestGenerateContent_Errors(t *testing.T) {
	tcs := map[string]struct {
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		"rate limited": {
			status: http.StatusTooManyRequests,
			body:   `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrRateLimited)
				var apiErr *APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, "quota", apiErr.Message)
			},
		},
		"no candidates": {
			status: http.StatusOK,
			body:   `{"candidates": []}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEmptyResponse)
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c, err := New(Config{APIKey: "k", BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = c.GenerateContent(context.Background(), &GenerateRequest{})
			tc.check(t, err)
		})
	}
}
