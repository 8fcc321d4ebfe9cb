package usecase

import (
	"context"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/weather"
	"multi-agent-assistant/pkg/datemath"
	"multi-agent-assistant/pkg/textparse"
)

// Handle answers a free-form weather question with either current
// conditions or a forecast.
func (uc *implUseCase) Handle(ctx context.Context, query string) agent.Result {
	out := uc.answer(ctx, query)
	return agent.Result{
		Formatted: out.Formatted,
		Payload:   out,
		Error:     out.Error,
	}
}

func (uc *implUseCase) answer(ctx context.Context, query string) weather.Output {
	location := textparse.ExtractLocation(datemath.StripPhrases(query), weather.DefaultLocation)
	out := weather.Output{Location: location}

	if weather.WantsForecast(query) {
		f := uc.Forecast(ctx, location, weather.DefaultForecastDays)
		out.Forecast = &f
		out.Formatted = weather.FormatForecast(f)
		out.Error = f.Error
		return out
	}

	c := uc.Current(ctx, location)
	ok, reason := weather.Suitability(c)
	out.Current = &c
	out.Outdoor = &weather.Outdoor{Suitable: ok, Reason: reason}
	out.Formatted = weather.FormatCurrent(c)
	out.Error = c.Error
	return out
}
