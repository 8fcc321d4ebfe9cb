package openai

import "context"

// IOpenAI is the surface used by the assistant. Implementations are safe for
// concurrent use.
type IOpenAI interface {
	ChatCompletion(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	GenerateImage(ctx context.Context, req *ImageRequest) (*ImageResponse, error)
	ChatModel() string
}
