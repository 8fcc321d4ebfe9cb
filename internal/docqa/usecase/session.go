package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/docqa"
	"multi-agent-assistant/internal/model"
	"multi-agent-assistant/pkg/llmprovider"
	pkgLog "multi-agent-assistant/pkg/log"
	"multi-agent-assistant/pkg/textparse"
)

type implSession struct {
	l     pkgLog.Logger
	llm   llmprovider.Generator
	index docqa.Index
	cfg   docqa.SessionConfig

	mu      sync.Mutex
	history []docqa.ChatMessage
}

var _ docqa.Session = (*implSession)(nil)

// NewSession creates a conversation-scoped handler over a shared index.
func NewSession(l pkgLog.Logger, llm llmprovider.Generator, index docqa.Index, cfg docqa.SessionConfig) *implSession {
	if cfg.TopK <= 0 {
		cfg.TopK = docqa.DefaultTopK
	}
	if cfg.MemoryWindow <= 0 {
		cfg.MemoryWindow = docqa.DefaultMemoryWindow
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = docqa.DefaultTemperature
	}
	return &implSession{
		l:     l,
		llm:   llm,
		index: index,
		cfg:   cfg,
	}
}

func (s *implSession) Label() agent.Label {
	return agent.LabelDocumentQA
}

func (s *implSession) Handle(ctx context.Context, query string) agent.Result {
	out := s.Ask(ctx, query)
	return agent.Result{
		Formatted: out.Formatted,
		Payload:   out,
		Error:     out.Error,
	}
}

func (s *implSession) Ask(ctx context.Context, question string) docqa.Output {
	out := docqa.Output{Sources: []string{}}

	if !s.index.Ready() {
		if err := s.index.Initialize(ctx); err != nil {
			s.l.Warnf(ctx, "%s: initialize: %v", docqa.LogPrefixAsk, err)
			out.Error = docqa.ErrNotInitialized.Error()
			return out
		}
	}

	answer, chunks, err := s.answer(ctx, question)
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", docqa.LogPrefixAsk, err)
		out.Error = fmt.Sprintf("Query error: %v", err)
		out.Formatted = fmt.Sprintf("Error: %v", err)
		return out
	}

	s.remember(question, answer)

	out.Answer = answer
	out.Formatted = answer
	for _, c := range chunks {
		out.Sources = append(out.Sources, textparse.Truncate(c.Text, docqa.SourcePreviewLen, "..."))
	}
	return out
}

func (s *implSession) answer(ctx context.Context, question string) (string, []model.Chunk, error) {
	history := s.MemoryContext()

	standalone := question
	if len(history) > 0 {
		condensed, err := s.condense(ctx, history, question)
		if err != nil {
			return "", nil, err
		}
		standalone = condensed
	}

	chunks, err := s.index.Search(ctx, standalone, s.cfg.TopK)
	if err != nil {
		return "", nil, err
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  llmprovider.RoleSystem,
			Parts: []llmprovider.Part{{Text: fmt.Sprintf(docqa.PromptAnswer, strings.Join(texts, "\n\n"))}},
		},
		Temperature: s.cfg.Temperature,
	}
	for _, m := range history {
		req.Messages = append(req.Messages, llmprovider.TextMessage(m.Role, m.Content))
	}
	req.Messages = append(req.Messages, llmprovider.TextMessage(llmprovider.RoleUser, standalone))

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		return "", nil, err
	}
	return resp.Text(), chunks, nil
}

// condense rewrites a follow-up into a question that stands on its own.
func (s *implSession) condense(ctx context.Context, history []docqa.ChatMessage, question string) (string, error) {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		speaker := "Human"
		if m.Role == llmprovider.RoleAssistant {
			speaker = "Assistant"
		}
		lines = append(lines, speaker+": "+m.Content)
	}

	resp, err := s.llm.GenerateContent(ctx, llmprovider.NewTextRequest(
		"",
		fmt.Sprintf(docqa.PromptCondense, strings.Join(lines, "\n"), question),
		s.cfg.Temperature,
		0,
	))
	if err != nil {
		return "", fmt.Errorf("condense question: %w", err)
	}
	if text := resp.Text(); text != "" {
		return text, nil
	}
	return question, nil
}

func (s *implSession) remember(question, answer string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history,
		docqa.ChatMessage{Role: llmprovider.RoleUser, Content: question},
		docqa.ChatMessage{Role: llmprovider.RoleAssistant, Content: answer},
	)
	if limit := s.cfg.MemoryWindow * 2; len(s.history) > limit {
		s.history = append([]docqa.ChatMessage(nil), s.history[len(s.history)-limit:]...)
	}
}

// Reset clears the chat window.
func (s *implSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

func (s *implSession) MemoryContext() []docqa.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]docqa.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// SemanticSearch returns the raw text of the k nearest chunks.
func (s *implSession) SemanticSearch(ctx context.Context, query string, k int) ([]string, error) {
	if !s.index.Ready() {
		if err := s.index.Initialize(ctx); err != nil {
			return nil, docqa.ErrNotInitialized
		}
	}
	chunks, err := s.index.Search(ctx, query, k)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out, nil
}
