package weatherapi

import "time"

// Config configures the WeatherAPI.com client.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Condition is the textual condition block.
type Condition struct {
	Text string `json:"text"`
	Code int    `json:"code"`
}

// Location describes the resolved place.
type Location struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	Country   string `json:"country"`
	LocalTime string `json:"localtime"`
}

// CurrentConditions is the "current" block of current.json.
type CurrentConditions struct {
	TempC      float64   `json:"temp_c"`
	TempF      float64   `json:"temp_f"`
	FeelsLikeC float64   `json:"feelslike_c"`
	Condition  Condition `json:"condition"`
	Humidity   int       `json:"humidity"`
	WindKph    float64   `json:"wind_kph"`
	UV         float64   `json:"uv"`
	IsDay      int       `json:"is_day"`
}

// CurrentResponse is the body of GET /current.json.
type CurrentResponse struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
}

// Day is the daily aggregate of a forecast day.
type Day struct {
	MaxTempC          float64   `json:"maxtemp_c"`
	MinTempC          float64   `json:"mintemp_c"`
	AvgTempC          float64   `json:"avgtemp_c"`
	Condition         Condition `json:"condition"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	UV                float64   `json:"uv"`
}

// ForecastDay is one entry of forecast.forecastday.
type ForecastDay struct {
	Date string `json:"date"`
	Day  Day    `json:"day"`
}

// ForecastResponse is the body of GET /forecast.json.
type ForecastResponse struct {
	Location Location          `json:"location"`
	Current  CurrentConditions `json:"current"`
	Forecast struct {
		ForecastDay []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
