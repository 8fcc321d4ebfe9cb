package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, SwaggerInfo.Title, doc.Info.Title)
	for _, path := range []string{
		"/api/v1/chat",
		"/api/v1/chat/rag/search",
		"/api/v1/image/styles",
		"/api/v1/sessions/{id}/history",
		"/ready",
	} {
		assert.Contains(t, doc.Paths, path)
	}
	assert.Contains(t, doc.Definitions, "http.searchReq")
	assert.Contains(t, doc.Definitions, "imagegen.Style")
}
