package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI REST endpoint. Any OpenAI compatible
	// gateway (DeepSeek, Qwen compatible mode) can be configured instead.
	DefaultBaseURL = "https://api.openai.com/v1"

	DefaultChatModel      = "gpt-3.5-turbo"
	DefaultEmbeddingModel = "text-embedding-ada-002"
	DefaultImageModel     = "dall-e-3"

	DefaultTimeout = 60 * time.Second
)

const (
	pathChatCompletions  = "/chat/completions"
	pathEmbeddings       = "/embeddings"
	pathImageGenerations = "/images/generations"
)
