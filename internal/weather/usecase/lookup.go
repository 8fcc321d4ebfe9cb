package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"multi-agent-assistant/internal/weather"
	"multi-agent-assistant/pkg/weatherapi"
)

func (uc *implUseCase) Current(ctx context.Context, location string) weather.Conditions {
	if uc.client == nil {
		return weather.Conditions{Error: weather.MsgInvalidKey}
	}

	resp, err := uc.client.Current(ctx, location)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", weather.LogPrefixCurrent, location, err)
		return weather.Conditions{Error: errorMessage(err, location)}
	}

	c := resp.Current
	return weather.Conditions{
		Location:   placeName(resp.Location),
		TempC:      c.TempC,
		TempF:      c.TempF,
		FeelsLikeC: c.FeelsLikeC,
		Condition:  c.Condition.Text,
		Humidity:   c.Humidity,
		WindKph:    c.WindKph,
		UV:         c.UV,
		IsDay:      c.IsDay == 1,
	}
}

func (uc *implUseCase) Forecast(ctx context.Context, location string, days int) weather.Forecast {
	if uc.client == nil {
		return weather.Forecast{Error: weather.MsgInvalidKey}
	}
	if days <= 0 {
		days = weather.DefaultForecastDays
	}
	days = min(days, weather.MaxForecastDays)

	resp, err := uc.client.Forecast(ctx, location, days)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %s: %v", weather.LogPrefixForecast, location, err)
		return weather.Forecast{Error: errorMessage(err, location)}
	}

	out := weather.Forecast{
		Location: placeName(resp.Location),
		Days:     make([]weather.ForecastDay, 0, len(resp.Forecast.ForecastDay)),
	}
	for _, fd := range resp.Forecast.ForecastDay {
		out.Days = append(out.Days, weather.ForecastDay{
			Date:         fd.Date,
			MaxTempC:     fd.Day.MaxTempC,
			MinTempC:     fd.Day.MinTempC,
			AvgTempC:     fd.Day.AvgTempC,
			Condition:    fd.Day.Condition.Text,
			ChanceOfRain: fd.Day.DailyChanceOfRain,
			UV:           fd.Day.UV,
		})
	}
	return out
}

func placeName(loc weatherapi.Location) string {
	return loc.Name + ", " + loc.Country
}

// errorMessage maps client errors onto the texts shown to users.
func errorMessage(err error, location string) string {
	var apiErr *weatherapi.APIError
	switch {
	case errors.Is(err, weatherapi.ErrTimeout):
		return weather.MsgTimeout
	case errors.Is(err, weatherapi.ErrInvalidLocation):
		return fmt.Sprintf(weather.MsgInvalidLocation, location)
	case errors.Is(err, weatherapi.ErrUnauthorized), errors.Is(err, weatherapi.ErrMissingAPIKey):
		return weather.MsgInvalidKey
	case errors.As(err, &apiErr):
		return fmt.Sprintf(weather.MsgAPIError, apiErr)
	case errors.Is(err, weatherapi.ErrNetwork):
		cause := strings.TrimPrefix(err.Error(), weatherapi.ErrNetwork.Error()+": ")
		return fmt.Sprintf(weather.MsgNetworkError, cause)
	default:
		return fmt.Sprintf(weather.MsgUnexpected, err)
	}
}
