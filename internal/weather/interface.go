package weather

import (
	"context"

	"multi-agent-assistant/internal/agent"
)

// UseCase answers weather questions and exposes the raw lookups for
// other handlers.
type UseCase interface {
	agent.Handler

	// Current fetches current conditions. Failures are reported in
	// Conditions.Error rather than returned.
	Current(ctx context.Context, location string) Conditions

	// Forecast fetches a multi-day forecast, clamped to MaxForecastDays.
	Forecast(ctx context.Context, location string, days int) Forecast
}
