package llmprovider

import (
	"context"
	"fmt"

	"multi-agent-assistant/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai (or any compatible endpoint) to the
// Provider interface.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

var _ Provider = (*OpenAIAdapter)(nil)

// NewOpenAIAdapter creates a new adapter reporting the given provider name.
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	if name == "" {
		name = ProviderOpenAI
	}
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	chatReq := &openai.ChatRequest{
		Messages:    convertToOpenAIMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	resp, err := a.client.ChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}

	return convertFromOpenAIResponse(a.name, resp), nil
}

// Name returns the provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *OpenAIAdapter) Model() string {
	return a.client.ChatModel()
}

// convertToOpenAIMessages flattens the request, prepending the system
// instruction as the first message.
func convertToOpenAIMessages(req *Request) []openai.ChatMessage {
	messages := make([]openai.ChatMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		if text := joinParts(req.SystemInstruction.Parts); text != "" {
			messages = append(messages, openai.ChatMessage{Role: RoleSystem, Content: text})
		}
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = RoleUser
		}
		messages = append(messages, openai.ChatMessage{Role: role, Content: joinParts(msg.Parts)})
	}
	return messages
}

func convertFromOpenAIResponse(name string, resp *openai.ChatResponse) *Response {
	out := &Response{
		Content:      Message{Role: RoleAssistant},
		ProviderName: name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		out.Content.Parts = []Part{{Text: resp.Choices[0].Message.Content}}
	}
	return out
}

func joinParts(parts []Part) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0].Text
	}
	text := parts[0].Text
	for _, p := range parts[1:] {
		text = fmt.Sprintf("%s\n%s", text, p.Text)
	}
	return text
}
