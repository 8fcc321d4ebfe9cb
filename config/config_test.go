package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProviders(t *testing.T) {
	t.Setenv("TEST_DEEPSEEK_KEY", "sk-from-env")

	raw := []interface{}{
		map[string]interface{}{
			"name": "openai", "enabled": true, "priority": 1,
			"api_key": "sk-inline", "model": "gpt-3.5-turbo", "timeout": "30s",
		},
		map[string]interface{}{
			"name": "deepseek", "enabled": false, "priority": float64(2),
			"api_key": "${TEST_DEEPSEEK_KEY}", "model": "deepseek-chat",
		},
		"not-a-map",
	}

	got := parseProviders(raw)
	require.Len(t, got, 2)
	assert.Equal(t, "sk-inline", got[0].APIKey)
	assert.Equal(t, "30s", got[0].Timeout)
	assert.Equal(t, 2, got[1].Priority)
	assert.Equal(t, "sk-from-env", got[1].APIKey)
	assert.False(t, got[1].Enabled)
}

func TestExpandEnvVar_Unset(t *testing.T) {
	viper.Reset()
	assert.Equal(t, "", expandEnvVar("${DEFINITELY_NOT_SET_ANYWHERE}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
}

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr bool
	}{
		{"empty", LLMConfig{}, true},
		{"missing model", LLMConfig{Providers: []ProviderConfig{{Name: "openai", Enabled: true, Priority: 1}}}, true},
		{"none enabled", LLMConfig{Providers: []ProviderConfig{{Name: "openai", Model: "m", Priority: 1}}}, true},
		{"zero priority", LLMConfig{Providers: []ProviderConfig{{Name: "openai", Model: "m", Enabled: true}}}, true},
		{
			"duplicate priority",
			LLMConfig{Providers: []ProviderConfig{
				{Name: "openai", Model: "m", Enabled: true, Priority: 1},
				{Name: "qwen", Model: "m", Enabled: true, Priority: 1},
			}},
			true,
		},
		{"valid", LLMConfig{Providers: []ProviderConfig{{Name: "openai", Model: "m", Enabled: true, Priority: 1}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_SynthesisesOpenAIProvider(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	require.Len(t, cfg.LLM.Providers, 1)
	p := cfg.LLM.Providers[0]
	assert.Equal(t, "openai", p.Name)
	assert.Equal(t, "sk-test", p.APIKey)
	assert.Equal(t, "gpt-3.5-turbo", p.Model)

	assert.Equal(t, 10, cfg.Memory.MaxTurns)
	assert.Equal(t, 3, cfg.Memory.ContextTurns)
	assert.Equal(t, 2000, cfg.RAG.ChunkSize)
	assert.Equal(t, "10s", cfg.Weather.Timeout)
	assert.Equal(t, 1, cfg.LLM.RetryAttempts)
	assert.False(t, cfg.LLM.FallbackEnabled)
}
