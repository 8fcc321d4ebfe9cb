package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"multi-agent-assistant/pkg/gemini"
	"multi-agent-assistant/pkg/openai"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	failTimes int // fail this many calls before succeeding; -1 always fails
	response  *Response
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.failTimes < 0 || m.callCount <= m.failTimes {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

// mockLogger records Info/Warn messages.
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if msg, ok := firstString(arg); ok {
		m.infoMessages = append(m.infoMessages, msg)
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if msg, ok := firstString(arg); ok {
		m.warnMessages = append(m.warnMessages, msg)
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func firstString(arg []any) (string, bool) {
	if len(arg) == 0 {
		return "", false
	}
	s, ok := arg[0].(string)
	return s, ok
}

func okResponse(name string) *Response {
	return &Response{
		Content:      TextMessage(RoleAssistant, "hello from "+name),
		ProviderName: name,
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}
}

func TestManager_GenerateContent(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		primary      *mockProvider
		secondary    *mockProvider
		wantProvider string
		wantErr      error
		wantCalls    [2]int
		wantWarns    int
	}{
		{
			name:         "primary succeeds",
			cfg:          Config{FallbackEnabled: true, RetryAttempts: 3},
			primary:      &mockProvider{name: "primary", response: okResponse("primary")},
			secondary:    &mockProvider{name: "secondary", response: okResponse("secondary")},
			wantProvider: "primary",
			wantCalls:    [2]int{1, 0},
		},
		{
			name:         "falls back after retries",
			cfg:          Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			primary:      &mockProvider{name: "primary", failTimes: -1},
			secondary:    &mockProvider{name: "secondary", response: okResponse("secondary")},
			wantProvider: "secondary",
			wantCalls:    [2]int{2, 1},
			wantWarns:    1,
		},
		{
			name:         "retry recovers on same provider",
			cfg:          Config{RetryAttempts: 3, RetryDelay: time.Millisecond},
			primary:      &mockProvider{name: "primary", failTimes: 1, response: okResponse("primary")},
			secondary:    &mockProvider{name: "secondary", response: okResponse("secondary")},
			wantProvider: "primary",
			wantCalls:    [2]int{2, 0},
		},
		{
			name:      "all fail",
			cfg:       Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			primary:   &mockProvider{name: "primary", failTimes: -1},
			secondary: &mockProvider{name: "secondary", failTimes: -1},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: [2]int{2, 2},
			wantWarns: 2,
		},
		{
			name:      "no fallback when disabled",
			cfg:       Config{RetryAttempts: 2, RetryDelay: time.Millisecond},
			primary:   &mockProvider{name: "primary", failTimes: -1},
			secondary: &mockProvider{name: "secondary", response: okResponse("secondary")},
			wantErr:   ErrAllProvidersFailed,
			wantCalls: [2]int{2, 0},
			wantWarns: 1,
		},
		{
			name:         "zero retry attempts still calls once",
			cfg:          Config{},
			primary:      &mockProvider{name: "primary", response: okResponse("primary")},
			secondary:    &mockProvider{name: "secondary"},
			wantProvider: "primary",
			wantCalls:    [2]int{1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &mockLogger{}
			cfg := tt.cfg
			m := NewManager([]Provider{tt.primary, tt.secondary}, &cfg, logger)

			resp, err := m.GenerateContent(context.Background(), NewTextRequest("", "Hello", 0.1, 0))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("provider = %s, want %s", resp.ProviderName, tt.wantProvider)
				}
				if len(logger.infoMessages) != 1 {
					t.Errorf("expected 1 info log, got %d", len(logger.infoMessages))
				}
			}

			if got := [2]int{tt.primary.callCount, tt.secondary.callCount}; got != tt.wantCalls {
				t.Errorf("calls = %v, want %v", got, tt.wantCalls)
			}
			if len(logger.warnMessages) != tt.wantWarns {
				t.Errorf("warn logs = %d, want %d", len(logger.warnMessages), tt.wantWarns)
			}
		})
	}
}

func TestManager_NoProvidersConfigured(t *testing.T) {
	m := NewManager(nil, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), NewTextRequest("", "Hello", 0, 0))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManager_NilUsageDoesNotPanic(t *testing.T) {
	p := &mockProvider{name: "primary", response: &Response{Content: TextMessage(RoleAssistant, "ok")}}
	m := NewManager([]Provider{p}, nil, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), NewTextRequest("", "Hello", 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "ok" {
		t.Errorf("Text() = %q, want ok", resp.Text())
	}
}

func TestManager_GlobalTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &mockProvider{name: "primary", response: okResponse("primary")}
	m := NewManager([]Provider{p}, &Config{RetryAttempts: 1, MaxTotalTimeout: time.Second}, &mockLogger{})

	if _, err := m.GenerateContent(ctx, NewTextRequest("", "Hello", 0, 0)); err == nil {
		t.Fatal("expected error for cancelled context")
	}
	if p.callCount != 0 {
		t.Errorf("provider should not be called, got %d calls", p.callCount)
	}
}

// erroringProvider always fails with err.
type erroringProvider struct {
	name  string
	err   error
	calls int
}

func (e *erroringProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	e.calls++
	return nil, &ProviderError{Provider: e.name, Err: e.err}
}
func (e *erroringProvider) Name() string  { return e.name }
func (e *erroringProvider) Model() string { return e.name + "-model" }

func TestManager_RateLimitSkipsRetries(t *testing.T) {
	limited := &erroringProvider{name: "openai", err: openai.ErrRateLimited}
	backup := &mockProvider{name: "gemini", response: okResponse("gemini")}
	m := NewManager([]Provider{limited, backup}, &Config{FallbackEnabled: true, RetryAttempts: 3}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), NewTextRequest("", "Hello", 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limited.calls != 1 {
		t.Errorf("rate limited provider called %d times, want 1", limited.calls)
	}
	if resp.ProviderName != "gemini" {
		t.Errorf("ProviderName = %q, want gemini", resp.ProviderName)
	}
}

func TestProviderError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "openai rate limit", err: openai.ErrRateLimited, target: ErrProviderRateLimited, want: true},
		{name: "gemini rate limit", err: gemini.ErrRateLimited, target: ErrProviderRateLimited, want: true},
		{name: "deadline", err: context.DeadlineExceeded, target: ErrProviderTimeout, want: true},
		{name: "other", err: errors.New("boom"), target: ErrProviderRateLimited, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := error(&ProviderError{Provider: "p", Err: tt.err})
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is = %v, want %v", got, tt.want)
			}
		})
	}
}
