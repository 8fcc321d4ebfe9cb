package weatherapi

import "context"

// IWeather is the WeatherAPI.com surface the service uses.
type IWeather interface {
	Current(ctx context.Context, location string) (*CurrentResponse, error)
	Forecast(ctx context.Context, location string, days int) (*ForecastResponse, error)
}
