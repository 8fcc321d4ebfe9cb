package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Timezone    string

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// LLM Provider Abstraction
	LLM    LLMConfig
	OpenAI OpenAIConfig

	// Capability backends
	Weather  WeatherConfig
	Database DatabaseConfig
	RAG      RAGConfig
	Qdrant   QdrantConfig
	Voyage   VoyageConfig
	Image    ImageConfig

	// Conversation state
	Memory  MemoryConfig
	Session SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// OpenAIConfig is used for embeddings and image generation, which are
// not routed through the provider manager.
type OpenAIConfig struct {
	APIKey         string
	BaseURL        string
	ChatModel      string
	EmbeddingModel string
	ImageModel     string
}

type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout string
}

type DatabaseConfig struct {
	CompanyPath string
	EventsPath  string
}

type RAGConfig struct {
	DocumentPath      string
	ChunkSize         int
	ChunkOverlap      int
	TopK              int
	MemoryWindow      int
	Temperature       float64
	EmbeddingProvider string // "openai" or "voyage"
	VectorStore       string // "memory" or "qdrant"
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
	Model  string
}

type ImageConfig struct {
	OutputDir       string
	Size            string
	Quality         string
	DownloadTimeout string
}

type MemoryConfig struct {
	MaxTurns     int
	ContextTurns int
}

type SessionConfig struct {
	MaxSessions     int
	TTL             string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Timezone = viper.GetString("timezone")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = viper.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI
	cfg.OpenAI.APIKey = expandEnvVar(viper.GetString("openai.api_key"))
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.ChatModel = viper.GetString("openai.chat_model")
	cfg.OpenAI.EmbeddingModel = viper.GetString("openai.embedding_model")
	cfg.OpenAI.ImageModel = viper.GetString("openai.image_model")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Weather
	cfg.Weather.APIKey = expandEnvVar(viper.GetString("weather.api_key"))
	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	cfg.Weather.Timeout = viper.GetString("weather.timeout")
	if key := viper.GetString("weather_api_key"); key != "" {
		cfg.Weather.APIKey = key
	}

	// Databases
	cfg.Database.CompanyPath = viper.GetString("database.company_path")
	cfg.Database.EventsPath = viper.GetString("database.events_path")

	// RAG
	cfg.RAG.DocumentPath = viper.GetString("rag.document_path")
	cfg.RAG.ChunkSize = viper.GetInt("rag.chunk_size")
	cfg.RAG.ChunkOverlap = viper.GetInt("rag.chunk_overlap")
	cfg.RAG.TopK = viper.GetInt("rag.top_k")
	cfg.RAG.MemoryWindow = viper.GetInt("rag.memory_window")
	cfg.RAG.Temperature = viper.GetFloat64("rag.temperature")
	cfg.RAG.EmbeddingProvider = viper.GetString("rag.embedding_provider")
	cfg.RAG.VectorStore = viper.GetString("rag.vector_store")

	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Voyage AI
	cfg.Voyage.APIKey = expandEnvVar(viper.GetString("voyage.api_key"))
	cfg.Voyage.Model = viper.GetString("voyage.model")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" {
		cfg.Voyage.APIKey = voyageKey
	}

	// Image
	cfg.Image.OutputDir = viper.GetString("image.output_dir")
	cfg.Image.Size = viper.GetString("image.size")
	cfg.Image.Quality = viper.GetString("image.quality")
	cfg.Image.DownloadTimeout = viper.GetString("image.download_timeout")

	// Conversation state
	cfg.Memory.MaxTurns = viper.GetInt("memory.max_turns")
	cfg.Memory.ContextTurns = viper.GetInt("memory.context_turns")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.TTL = viper.GetString("session.ttl")
	cfg.Session.RateLimitPerMin = viper.GetInt("session.rate_limit_per_min")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		cfg.LLM.Providers = parseProviders(viper.Get("llm.providers"))
	}

	// Without an explicit providers list, fall back to the OpenAI key.
	if len(cfg.LLM.Providers) == 0 && cfg.OpenAI.APIKey != "" {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "openai",
			Enabled:  true,
			Priority: 1,
			APIKey:   cfg.OpenAI.APIKey,
			BaseURL:  cfg.OpenAI.BaseURL,
			Model:    cfg.OpenAI.ChatModel,
			Timeout:  "60s",
		}}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("timezone", "Local")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.chat_model", "gpt-3.5-turbo")
	viper.SetDefault("openai.embedding_model", "text-embedding-ada-002")
	viper.SetDefault("openai.image_model", "dall-e-3")

	viper.SetDefault("weather.base_url", "http://api.weatherapi.com/v1")
	viper.SetDefault("weather.timeout", "10s")

	viper.SetDefault("database.company_path", "company.db")
	viper.SetDefault("database.events_path", "events.db")

	viper.SetDefault("rag.document_path", "employee_handbook.txt")
	viper.SetDefault("rag.chunk_size", 2000)
	viper.SetDefault("rag.chunk_overlap", 200)
	viper.SetDefault("rag.top_k", 3)
	viper.SetDefault("rag.memory_window", 5)
	viper.SetDefault("rag.temperature", 0.3)
	viper.SetDefault("rag.embedding_provider", "openai")
	viper.SetDefault("rag.vector_store", "memory")

	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "employee_handbook")
	viper.SetDefault("qdrant.vector_size", 1536)
	viper.SetDefault("voyage.model", "voyage-3")

	viper.SetDefault("image.output_dir", "generated_images")
	viper.SetDefault("image.size", "1024x1024")
	viper.SetDefault("image.quality", "standard")
	viper.SetDefault("image.download_timeout", "30s")

	viper.SetDefault("memory.max_turns", 10)
	viper.SetDefault("memory.context_turns", 3)
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.rate_limit_per_min", 30)

	// LLM defaults: one attempt, no fallback
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// parseProviders reads the llm.providers list; viper hands it back as
// []interface{} of maps.
func parseProviders(raw interface{}) []ProviderConfig {
	list, ok := raw.([]interface{})
	if !ok {
		return nil
	}
	var providers []ProviderConfig
	for _, p := range list {
		m, ok := p.(map[string]interface{})
		if !ok {
			continue
		}
		providers = append(providers, ProviderConfig{
			Name:     getStringFromMap(m, "name"),
			Enabled:  getBoolFromMap(m, "enabled"),
			Priority: getIntFromMap(m, "priority"),
			APIKey:   expandEnvVar(getStringFromMap(m, "api_key")),
			BaseURL:  getStringFromMap(m, "base_url"),
			Model:    getStringFromMap(m, "model"),
			Timeout:  getStringFromMap(m, "timeout"),
		})
	}
	return providers
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers or openai.api_key")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case int64:
			return int(v)
		case float64:
			return int(v)
		}
	}
	return 0
}
