package openai

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrMissingAPIKey  = errors.New("openai: API key is required")
	ErrEmptyResponse  = errors.New("openai: empty response")
	ErrUnauthorized   = errors.New("openai: authentication failed")
	ErrRateLimited    = errors.New("openai: rate limit exceeded")
	ErrInvalidRequest = errors.New("openai: invalid request")
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("openai API error %d (%s): %s", e.StatusCode, e.Type, e.Message)
	}
	return fmt.Sprintf("openai API error %d: %s", e.StatusCode, e.Message)
}

// Is lets callers match an APIError against the package sentinels.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized || strings.Contains(e.Type, "authentication")
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests || strings.Contains(e.Type, "rate_limit") || strings.Contains(e.Code, "rate_limit")
	case ErrInvalidRequest:
		return e.StatusCode == http.StatusBadRequest || strings.Contains(e.Type, "invalid_request")
	}
	return false
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
		apiErr.Message = errResp.Error.Message
		apiErr.Type = errResp.Error.Type
		if errResp.Error.Code != nil {
			apiErr.Code = fmt.Sprint(errResp.Error.Code)
		}
	}
	return apiErr
}
