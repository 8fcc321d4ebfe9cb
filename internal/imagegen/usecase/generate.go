package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/imagegen"
	"multi-agent-assistant/pkg/openai"
)

// Handle detects a style, strips the request phrase and generates an
// enhanced image.
func (uc *implUseCase) Handle(ctx context.Context, query string) agent.Result {
	out := uc.Generate(ctx, imagegen.GenerateInput{
		Prompt:  imagegen.StripRequestPhrase(query),
		Style:   imagegen.DetectStyle(query),
		Enhance: true,
	})
	out.Query = query
	out.Formatted = imagegen.Format(out)

	return agent.Result{
		Formatted: out.Formatted,
		Payload:   out,
		Error:     out.Error,
	}
}

func (uc *implUseCase) Generate(ctx context.Context, input imagegen.GenerateInput) imagegen.Output {
	out := imagegen.Output{
		Query:          input.Prompt,
		OriginalPrompt: input.Prompt,
		Style:          input.Style,
		Size:           input.Size,
		Quality:        input.Quality,
	}
	if out.Size == "" {
		out.Size = uc.cfg.Size
	}
	if out.Quality == "" {
		out.Quality = uc.cfg.Quality
	}

	if err := validate(input.Prompt, out.Size, out.Quality); err != nil {
		out.Error = fmt.Sprintf(imagegen.MsgInvalidRequest, err)
		out.Formatted = imagegen.Format(out)
		return out
	}

	final := input.Prompt
	if input.Enhance {
		out.EnhancedPrompt = uc.Enhance(ctx, input.Prompt, input.Style)
		final = out.EnhancedPrompt
	}

	url, err := uc.createImage(ctx, final, out.Size, out.Quality)
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", imagegen.LogPrefixGenerate, err)
		out.Error = classify(err)
		out.Formatted = imagegen.Format(out)
		return out
	}
	out.ImageURL = url

	path, err := uc.save(ctx, url, input.Prompt)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", imagegen.LogPrefixSave, err)
	}
	out.LocalPath = path
	out.Formatted = imagegen.Format(out)
	return out
}

func (uc *implUseCase) createImage(ctx context.Context, prompt, size, quality string) (string, error) {
	if uc.images == nil {
		return "", openai.ErrMissingAPIKey
	}

	resp, err := uc.images.GenerateImage(ctx, &openai.ImageRequest{
		Model:   uc.cfg.Model,
		Prompt:  prompt,
		Size:    size,
		Quality: quality,
		N:       1,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", imagegen.ErrNoImage
	}
	return resp.Data[0].URL, nil
}

func validate(prompt, size, quality string) error {
	if strings.TrimSpace(prompt) == "" {
		return imagegen.ErrEmptyPrompt
	}
	if !imagegen.ValidSize(size) {
		return fmt.Errorf("%w: %s", imagegen.ErrInvalidSize, size)
	}
	if !imagegen.ValidQuality(quality) {
		return fmt.Errorf("%w: %s", imagegen.ErrInvalidQuality, quality)
	}
	return nil
}

// classify maps API failures onto the texts shown to users.
func classify(err error) string {
	switch {
	case errors.Is(err, openai.ErrInvalidRequest):
		return fmt.Sprintf(imagegen.MsgInvalidRequest, err)
	case errors.Is(err, openai.ErrRateLimited):
		return imagegen.MsgRateLimited
	case errors.Is(err, openai.ErrUnauthorized):
		return imagegen.MsgAuthFailed
	default:
		return fmt.Sprintf(imagegen.MsgGeneric, err)
	}
}
