package imagegen

import (
	"context"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/pkg/openai"
)

// ImageClient is the image generation endpoint. *openai.Client satisfies it.
type ImageClient interface {
	GenerateImage(ctx context.Context, req *openai.ImageRequest) (*openai.ImageResponse, error)
}

// UseCase turns free-form requests into generated images.
type UseCase interface {
	agent.Handler

	// Enhance rewrites a prompt for image generation. It never fails: on
	// error the prompt is returned unchanged.
	Enhance(ctx context.Context, prompt, style string) string

	// Generate creates one image, optionally enhancing the prompt first,
	// and saves it locally.
	Generate(ctx context.Context, input GenerateInput) Output

	// Preview returns the enhanced prompt without calling the image API.
	Preview(ctx context.Context, query string) PreviewOutput
}
