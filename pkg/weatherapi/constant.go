package weatherapi

import "time"

const (
	DefaultBaseURL = "http://api.weatherapi.com/v1"
	DefaultTimeout = 10 * time.Second

	DefaultForecastDays = 3
	MaxForecastDays     = 10

	pathCurrent  = "/current.json"
	pathForecast = "/forecast.json"
)
