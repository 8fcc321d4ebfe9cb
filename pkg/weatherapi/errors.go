package weatherapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingAPIKey   = errors.New("weatherapi: api key is required")
	ErrInvalidLocation = errors.New("weatherapi: invalid location")
	ErrUnauthorized    = errors.New("weatherapi: invalid api key")
	ErrTimeout         = errors.New("weatherapi: request timed out")
	ErrNetwork         = errors.New("weatherapi: network error")
)

// APIError is a non-2xx response that is not a bad location or bad key.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
}

func newStatusError(status int, body []byte, location string) error {
	switch status {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidLocation, location)
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}

	apiErr := &APIError{StatusCode: status}
	var er errorResponse
	if json.Unmarshal(body, &er) == nil {
		apiErr.Message = er.Error.Message
	}
	return apiErr
}
