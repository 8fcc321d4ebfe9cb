package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"multi-agent-assistant/internal/weather"
	pkgLog "multi-agent-assistant/pkg/log"
	"multi-agent-assistant/pkg/weatherapi"
)

type fakeWeather struct {
	current  *weatherapi.CurrentResponse
	forecast *weatherapi.ForecastResponse
	err      error

	gotLocation string
	gotDays     int
}

func (f *fakeWeather) Current(ctx context.Context, location string) (*weatherapi.CurrentResponse, error) {
	f.gotLocation = location
	return f.current, f.err
}

func (f *fakeWeather) Forecast(ctx context.Context, location string, days int) (*weatherapi.ForecastResponse, error) {
	f.gotLocation, f.gotDays = location, days
	return f.forecast, f.err
}

func sunny() *weatherapi.CurrentResponse {
	return &weatherapi.CurrentResponse{
		Location: weatherapi.Location{Name: "Tokyo", Country: "Japan"},
		Current: weatherapi.CurrentConditions{
			TempC: 22, TempF: 71.6, FeelsLikeC: 22, Humidity: 50, WindKph: 9, UV: 5, IsDay: 1,
			Condition: weatherapi.Condition{Text: "Sunny"},
		},
	}
}

func TestHandle_Current(t *testing.T) {
	fake := &fakeWeather{current: sunny()}
	uc := New(pkgLog.NewNop(), fake)

	res := uc.Handle(context.Background(), "What's the weather in Tokyo?")
	if fake.gotLocation != "Tokyo" {
		t.Fatalf("location = %q", fake.gotLocation)
	}
	if res.Error != "" {
		t.Fatalf("unexpected error %q", res.Error)
	}

	out := res.Payload.(weather.Output)
	if out.Current == nil || out.Forecast != nil {
		t.Fatalf("expected current conditions only: %+v", out)
	}
	if out.Current.Location != "Tokyo, Japan" || !out.Current.IsDay {
		t.Errorf("conditions = %+v", out.Current)
	}
	if !out.Outdoor.Suitable {
		t.Errorf("expected suitable, got %q", out.Outdoor.Reason)
	}
	if res.Formatted != weather.FormatCurrent(*out.Current) {
		t.Errorf("formatted mismatch:\n%s", res.Formatted)
	}
}

func TestHandle_DefaultLocation(t *testing.T) {
	fake := &fakeWeather{current: sunny()}
	New(pkgLog.NewNop(), fake).Handle(context.Background(), "how hot is it")
	if fake.gotLocation != weather.DefaultLocation {
		t.Errorf("location = %q, want %q", fake.gotLocation, weather.DefaultLocation)
	}
}

func TestHandle_Forecast(t *testing.T) {
	fc := &weatherapi.ForecastResponse{Location: weatherapi.Location{Name: "London", Country: "United Kingdom"}}
	fc.Forecast.ForecastDay = []weatherapi.ForecastDay{
		{Date: "2024-05-01", Day: weatherapi.Day{MaxTempC: 18, MinTempC: 9, Condition: weatherapi.Condition{Text: "Cloudy"}, DailyChanceOfRain: 20}},
		{Date: "2024-05-02", Day: weatherapi.Day{MaxTempC: 17, MinTempC: 8, Condition: weatherapi.Condition{Text: "Rain"}, DailyChanceOfRain: 90}},
	}
	fake := &fakeWeather{forecast: fc}

	res := New(pkgLog.NewNop(), fake).Handle(context.Background(), "forecast in London?")
	if fake.gotDays != weather.DefaultForecastDays {
		t.Errorf("days = %d", fake.gotDays)
	}
	out := res.Payload.(weather.Output)
	if out.Forecast == nil || len(out.Forecast.Days) != 2 {
		t.Fatalf("forecast = %+v", out.Forecast)
	}
	if out.Forecast.Days[1].ChanceOfRain != 90 {
		t.Errorf("day 2 = %+v", out.Forecast.Days[1])
	}
}

func TestHandle_DatePhraseNotTakenAsLocation(t *testing.T) {
	fc := &weatherapi.ForecastResponse{Location: weatherapi.Location{Name: "London", Country: "United Kingdom"}}
	fake := &fakeWeather{forecast: fc}

	res := New(pkgLog.NewNop(), fake).Handle(context.Background(), "Will it rain in London tomorrow?")
	if fake.gotLocation != "London" {
		t.Errorf("location = %q, want London", fake.gotLocation)
	}
	if out := res.Payload.(weather.Output); out.Forecast == nil {
		t.Errorf("expected a forecast for a question about tomorrow")
	}
}

func TestForecast_ClampsDays(t *testing.T) {
	fake := &fakeWeather{forecast: &weatherapi.ForecastResponse{}}
	New(pkgLog.NewNop(), fake).Forecast(context.Background(), "Oslo", 14)
	if fake.gotDays != weather.MaxForecastDays {
		t.Errorf("days = %d, want %d", fake.gotDays, weather.MaxForecastDays)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", weatherapi.ErrTimeout, weather.MsgTimeout},
		{"bad location", fmt.Errorf("%w: Atlantis", weatherapi.ErrInvalidLocation), "Invalid location: Atlantis"},
		{"bad key", weatherapi.ErrUnauthorized, weather.MsgInvalidKey},
		{"server", &weatherapi.APIError{StatusCode: 500, Message: "Internal application error."}, "Weather API error: 500 Internal application error."},
		{"network", fmt.Errorf("%w: %v", weatherapi.ErrNetwork, errors.New("connection refused")), "Network error: connection refused"},
		{"other", errors.New("weird"), "Unexpected error: weird"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeWeather{err: tc.err}
			res := New(pkgLog.NewNop(), fake).Handle(context.Background(), "weather in Atlantis")
			if res.Error != tc.want {
				t.Errorf("error = %q, want %q", res.Error, tc.want)
			}
			if res.Formatted != "Weather Error: "+tc.want {
				t.Errorf("formatted = %q", res.Formatted)
			}
			out := res.Payload.(weather.Output)
			if out.Outdoor.Suitable || out.Outdoor.Reason != weather.MsgUnavailable {
				t.Errorf("outdoor = %+v", out.Outdoor)
			}
		})
	}
}

func TestNilClient(t *testing.T) {
	uc := New(pkgLog.NewNop(), nil)
	if c := uc.Current(context.Background(), "Paris"); c.Error != weather.MsgInvalidKey {
		t.Errorf("error = %q", c.Error)
	}
	if f := uc.Forecast(context.Background(), "Paris", 3); f.Error != weather.MsgInvalidKey {
		t.Errorf("error = %q", f.Error)
	}
}
