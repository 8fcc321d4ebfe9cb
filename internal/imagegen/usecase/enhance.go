package usecase

import (
	"context"
	"fmt"

	"multi-agent-assistant/internal/imagegen"
	"multi-agent-assistant/pkg/llmprovider"
)

func (uc *implUseCase) Enhance(ctx context.Context, prompt, style string) string {
	guidance := ""
	if style != "" {
		guidance = fmt.Sprintf(imagegen.StyleGuidance, style)
	}

	resp, err := uc.llm.GenerateContent(ctx, llmprovider.NewTextRequest(
		imagegen.PromptEnhanceSystem,
		fmt.Sprintf(imagegen.PromptEnhanceUser, prompt, guidance),
		imagegen.EnhanceTemperature,
		imagegen.EnhanceMaxTokens,
	))
	if err != nil {
		uc.l.Warnf(ctx, "%s: keeping original prompt: %v", imagegen.LogPrefixEnhance, err)
		return prompt
	}

	if enhanced := resp.Text(); enhanced != "" {
		return enhanced
	}
	return prompt
}

func (uc *implUseCase) Preview(ctx context.Context, query string) imagegen.PreviewOutput {
	style := imagegen.DetectStyle(query)
	prompt := imagegen.StripRequestPhrase(query)
	return imagegen.PreviewOutput{
		Prompt:   prompt,
		Enhanced: uc.Enhance(ctx, prompt, style),
		Style:    style,
	}
}
