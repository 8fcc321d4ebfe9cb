package llmprovider

import (
	"context"

	"multi-agent-assistant/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client gemini.IGemini
}

var _ Provider = (*GeminiAdapter)(nil)

func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	resp, err := a.client.GenerateContent(ctx, convertToGeminiRequest(req))
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Err: err}
	}

	model := resp.ModelVersion
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Content:      TextMessage(RoleAssistant, resp.Text()),
		ProviderName: ProviderGemini,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.UsageMetadata.PromptTokenCount,
			OutputTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:  resp.UsageMetadata.TotalTokenCount,
		},
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return ProviderGemini
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// convertToGeminiRequest maps assistant turns to the "model" role and
// lifts the system instruction out of the message list.
func convertToGeminiRequest(req *Request) *gemini.GenerateRequest {
	out := &gemini.GenerateRequest{
		Contents: make([]gemini.Content, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		out.SystemInstruction = &gemini.Content{
			Parts: []gemini.Part{{Text: joinParts(req.SystemInstruction.Parts)}},
		}
	}
	for _, msg := range req.Messages {
		role := gemini.RoleUser
		if msg.Role == RoleAssistant {
			role = gemini.RoleModel
		}
		out.Contents = append(out.Contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: joinParts(msg.Parts)}},
		})
	}
	if req.Temperature > 0 || req.MaxTokens > 0 {
		out.GenerationConfig = &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		}
	}
	return out
}
