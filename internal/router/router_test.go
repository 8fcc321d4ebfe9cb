package router

import (
	"context"
	"errors"
	"strings"
	"testing"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/pkg/llmprovider"
	"multi-agent-assistant/pkg/log"
)

type mockLLM struct {
	text    string
	err     error
	lastReq *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage(llmprovider.RoleAssistant, m.text)}, nil
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		err       error
		wantLabel agent.Label
		wantConf  float64
	}{
		{
			name:      "plain json",
			reply:     `{"agent": "sql", "confidence": 0.95, "reasoning": "salary question"}`,
			wantLabel: agent.LabelSQL,
			wantConf:  0.95,
		},
		{
			name:      "fenced json",
			reply:     "```json\n{\"agent\": \"weather\", \"confidence\": 0.9, \"reasoning\": \"w\"}\n```",
			wantLabel: agent.LabelWeather,
			wantConf:  0.9,
		},
		{
			name:      "embedded fragment",
			reply:     `Sure! Here you go: {"agent": "image", "confidence": 0.8, "reasoning": "draw"} hope it helps`,
			wantLabel: agent.LabelImage,
			wantConf:  0.8,
		},
		{
			name:      "rag alias",
			reply:     `{"agent": "RAG", "confidence": 0.7, "reasoning": "pto"}`,
			wantLabel: agent.LabelDocumentQA,
			wantConf:  0.7,
		},
		{
			name:      "recommender alias",
			reply:     `{"agent": "recommender", "confidence": 0.6, "reasoning": "events"}`,
			wantLabel: agent.LabelRecommend,
			wantConf:  0.6,
		},
		{
			name:      "percentage confidence",
			reply:     `{"agent": "sql", "confidence": 85, "reasoning": "x"}`,
			wantLabel: agent.LabelSQL,
			wantConf:  0.85,
		},
		{
			name:      "unknown label kept",
			reply:     `{"agent": "Calendar", "confidence": 0.6, "reasoning": "meeting"}`,
			wantLabel: agent.Label("calendar"),
			wantConf:  0.6,
		},
		{
			name:      "unparseable",
			reply:     "I think this is about the weather",
			wantLabel: agent.LabelGeneral,
			wantConf:  0,
		},
		{
			name:      "provider error",
			err:       errors.New("rate limited"),
			wantLabel: agent.LabelGeneral,
			wantConf:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockLLM{text: tt.reply, err: tt.err}
			r := New(llm, log.NewNop())

			got := r.Classify(context.Background(), "What is the average salary?", "")

			if got.Label != tt.wantLabel {
				t.Errorf("Label = %s, want %s", got.Label, tt.wantLabel)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("Confidence %v out of range", got.Confidence)
			}
		})
	}
}

func TestClassify_ProviderErrorReasoning(t *testing.T) {
	r := New(&mockLLM{err: errors.New("boom")}, log.NewNop())
	got := r.Classify(context.Background(), "hi", "")
	if !strings.Contains(got.Reasoning, "boom") {
		t.Errorf("Reasoning = %q, want it to mention the failure", got.Reasoning)
	}
}

func TestClassify_Prompt(t *testing.T) {
	llm := &mockLLM{text: `{"agent":"general","confidence":1,"reasoning":""}`}
	r := New(llm, log.NewNop())

	r.Classify(context.Background(), "Does it roll over?", "User: How much PTO?\nAssistant: 15 days...")

	req := llm.lastReq
	if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != PromptRouterSystem {
		t.Fatalf("unexpected system prompt: %+v", req.SystemInstruction)
	}
	if req.Temperature != RouterTemperature || req.MaxTokens != RouterMaxTokens {
		t.Errorf("temperature/max tokens = %v/%d", req.Temperature, req.MaxTokens)
	}
	user := req.Messages[0].Parts[0].Text
	for _, want := range []string{"User: How much PTO?", `User input: "Does it roll over?"`, "- document-qa:"} {
		if !strings.Contains(user, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	r.Classify(context.Background(), "hi", "")
	if !strings.Contains(llm.lastReq.Messages[0].Parts[0].Text, PromptNoContext) {
		t.Error("empty context should render the no-context marker")
	}
}

func TestNormalizeConfidence(t *testing.T) {
	cases := map[float64]float64{-0.5: 0, 0: 0, 0.42: 0.42, 1: 1, 50: 0.5, 100: 1, 250: 1}
	for in, want := range cases {
		if got := normalizeConfidence(in); got != want {
			t.Errorf("normalizeConfidence(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLabel(t *testing.T) {
	tests := map[string]struct {
		want agent.Label
		ok   bool
	}{
		"sql":         {agent.LabelSQL, true},
		" RAG ":       {agent.LabelDocumentQA, true},
		"recommender": {agent.LabelRecommend, true},
		"":            {agent.LabelGeneral, true},
		"calendar":    {agent.Label("calendar"), false},
	}
	for in, tc := range tests {
		got, ok := ParseLabel(in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseLabel(%q) = %q, %v; want %q, %v", in, got, ok, tc.want, tc.ok)
		}
	}
}
