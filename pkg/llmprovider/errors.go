package llmprovider

import (
	"context"
	"errors"
	"fmt"

	"multi-agent-assistant/pkg/gemini"
	"multi-agent-assistant/pkg/openai"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	ErrInvalidRequest        = errors.New("invalid request")

	// ErrProviderTimeout and ErrProviderRateLimited are matched through
	// ProviderError.Is, whatever client produced the underlying error.
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderRateLimited = errors.New("provider rate limited")
)

// ProviderError tags a client error with the provider that returned it.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

func (e *ProviderError) Is(target error) bool {
	switch target {
	case ErrProviderTimeout:
		return errors.Is(e.Err, context.DeadlineExceeded)
	case ErrProviderRateLimited:
		return errors.Is(e.Err, openai.ErrRateLimited) || errors.Is(e.Err, gemini.ErrRateLimited)
	}
	return false
}

// retryable reports whether another attempt against the same provider
// can help. Rate limits are better served by the next provider.
func retryable(err error) bool {
	return !errors.Is(err, ErrProviderRateLimited) &&
		!errors.Is(err, ErrInvalidRequest) &&
		!errors.Is(err, context.Canceled)
}
