package router

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/pkg/llmprovider"
)

var jsonFragment = regexp.MustCompile(`\{[^}]+\}`)

// Classify determines user intent from message
func (r *SemanticRouter) Classify(ctx context.Context, message string, conversationContext string) Classification {
	if conversationContext == "" {
		conversationContext = PromptNoContext
	}
	prompt := fmt.Sprintf(PromptRouterUser, conversationContext, message)

	resp, err := r.llm.GenerateContent(ctx, llmprovider.NewTextRequest(
		PromptRouterSystem, prompt, RouterTemperature, RouterMaxTokens,
	))
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return Classification{
			Label:      RouterFallbackLabel,
			Confidence: RouterFallbackConfidence,
			Reasoning:  fmt.Sprintf(ReasonClassificationError, err),
		}
	}

	out, err := parseOutput(resp.Text())
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return Classification{
			Label:      RouterFallbackLabel,
			Confidence: RouterFallbackConfidence,
			Reasoning:  ReasonParsingError,
		}
	}

	c := Classification{
		Label:      normalizeLabel(out.Agent),
		Confidence: normalizeConfidence(out.Confidence),
		Reasoning:  out.Reasoning,
	}
	r.l.Infof(ctx, "%s: Classified as %s (confidence: %.2f)", LogPrefixClassify, c.Label, c.Confidence)
	return c
}

// parseOutput tries the whole reply first, then the first {...} fragment.
func parseOutput(text string) (rawOutput, error) {
	text = stripCodeFence(text)

	var out rawOutput
	err := json.Unmarshal([]byte(text), &out)
	if err == nil {
		return out, nil
	}

	frag := jsonFragment.FindString(text)
	if frag == "" {
		return rawOutput{}, err
	}
	if err := json.Unmarshal([]byte(frag), &out); err != nil {
		return rawOutput{}, err
	}
	return out, nil
}

// stripCodeFence removes ```json ... ``` wrapping if present.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "```json"):
		text = strings.TrimPrefix(text, "```json")
	case strings.HasPrefix(text, "```"):
		text = strings.TrimPrefix(text, "```")
	default:
		return text
	}
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), "```"))
}

func normalizeLabel(s string) agent.Label {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RouterFallbackLabel
	}
	if l, ok := aliases[s]; ok {
		return l
	}
	return agent.Label(s)
}

func normalizeConfidence(c float64) float64 {
	switch {
	case c < 0:
		return 0
	case c <= 1:
		return c
	case c <= 100:
		return c / 100
	default:
		return 1
	}
}

// ParseLabel maps user-supplied agent names ("rag", "recommender", ...) to a
// label. ok is false for names outside the closed set.
func ParseLabel(s string) (agent.Label, bool) {
	l := normalizeLabel(s)
	return l, l.Valid()
}
