package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Client is a WeatherAPI.com REST client.
type Client struct {
	apiKey  string
	baseURL string
	client  *resty.Client
}

var _ IWeather = (*Client)(nil)

// New creates a new client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  resty.New().SetTimeout(cfg.Timeout),
	}, nil
}

// Current fetches current conditions for a location.
func (c *Client) Current(ctx context.Context, location string) (*CurrentResponse, error) {
	var out CurrentResponse
	err := c.get(ctx, pathCurrent, location, map[string]string{"aqi": "no"}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast fetches a daily forecast. days is clamped to [1, MaxForecastDays];
// zero means DefaultForecastDays.
func (c *Client) Forecast(ctx context.Context, location string, days int) (*ForecastResponse, error) {
	switch {
	case days <= 0:
		days = DefaultForecastDays
	case days > MaxForecastDays:
		days = MaxForecastDays
	}

	var out ForecastResponse
	err := c.get(ctx, pathForecast, location, map[string]string{
		"days": strconv.Itoa(days),
		"aqi":  "no",
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path, location string, params map[string]string, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetQueryParam("q", location).
		SetQueryParams(params).
		Get(c.baseURL + path)
	if err != nil {
		if isTimeout(err) {
			return ErrTimeout
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return newStatusError(resp.StatusCode(), resp.Body(), location)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("weatherapi: parse %s response: %w", path, err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
