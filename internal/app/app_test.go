package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multi-agent-assistant/config"
	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/seed"
	pkgLog "multi-agent-assistant/pkg/log"
)

func testConfig(dir string) *config.Config {
	cfg := &config.Config{Timezone: "UTC"}
	cfg.LLM.Providers = []config.ProviderConfig{{
		Name: "openai", Enabled: true, Priority: 1, APIKey: "sk-test", Model: "gpt-3.5-turbo",
	}}
	cfg.OpenAI.APIKey = "sk-test"
	cfg.Database.CompanyPath = filepath.Join(dir, "company.db")
	cfg.Database.EventsPath = filepath.Join(dir, "events.db")
	cfg.RAG.DocumentPath = filepath.Join(dir, "employee_handbook.txt")
	cfg.Image.OutputDir = filepath.Join(dir, "images")
	cfg.Memory.MaxTurns = 10
	return cfg
}

func TestNew_AllBackends(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	cfg := testConfig(dir)

	_, err := seed.All(ctx, seed.Options{
		CompanyPath:  cfg.Database.CompanyPath,
		EventsPath:   cfg.Database.EventsPath,
		HandbookPath: cfg.RAG.DocumentPath,
		Today:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	a, err := New(ctx, cfg, pkgLog.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.NoError(t, a.Ready())

	o := a.Sessions().Get("s1")
	assert.Equal(t, []agent.Label{
		agent.LabelSQL, agent.LabelDocumentQA, agent.LabelWeather, agent.LabelRecommend, agent.LabelImage,
	}, o.Registry().Labels())

	// each conversation gets its own document Q&A handler
	h1, _ := o.Registry().Get(agent.LabelDocumentQA)
	h2, _ := a.Sessions().Get("s2").Registry().Get(agent.LabelDocumentQA)
	assert.NotSame(t, h1, h2)
}

func TestNew_MissingDatabases(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.RAG.EmbeddingProvider = EmbeddingVoyage

	a, err := New(context.Background(), cfg, pkgLog.NewNop())
	require.NoError(t, err)

	err = a.Ready()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company database")
	assert.Contains(t, err.Error(), "events database")
	assert.Contains(t, err.Error(), "document Q&A")

	labels := a.Sessions().Get("s1").Registry().Labels()
	assert.Equal(t, []agent.Label{agent.LabelWeather, agent.LabelImage}, labels)
}

func TestNew_NoProviders(t *testing.T) {
	_, err := New(context.Background(), &config.Config{}, pkgLog.NewNop())
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, parseDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("", time.Minute))
	assert.Equal(t, time.Minute, parseDuration("soon", time.Minute))
}
