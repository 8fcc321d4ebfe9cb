package llmprovider

import (
	"testing"

	"multi-agent-assistant/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: ProviderGemini, Enabled: true, Priority: 3, APIKey: "g", Model: "gemini-2.5-flash"},
		{Name: ProviderOpenAI, Enabled: true, Priority: 1, APIKey: "o", Model: "gpt-3.5-turbo"},
		{Name: ProviderQwen, Enabled: false, Priority: 2, APIKey: "q", Model: "qwen-plus"},
		{Name: "unknown", Enabled: true, Priority: 4, APIKey: "x", Model: "m"},
	}}

	providers, err := InitializeProviders(cfg)
	require.NoError(t, err)

	require.Len(t, providers, 2)
	assert.Equal(t, ProviderOpenAI, providers[0].Name())
	assert.Equal(t, ProviderGemini, providers[1].Name())
	assert.Equal(t, "gemini-2.5-flash", providers[1].Model())
}

func TestInitializeProviders_Errors(t *testing.T) {
	_, err := InitializeProviders(nil)
	assert.Error(t, err)

	_, err = InitializeProviders(&config.LLMConfig{})
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)

	_, err = InitializeProviders(&config.LLMConfig{Providers: []config.ProviderConfig{
		{Name: ProviderDeepSeek, Enabled: true, Priority: 1, Model: "deepseek-chat"},
	}})
	assert.ErrorContains(t, err, "API key is required")
}
