package weather

// Conditions is the current weather at a resolved location.
type Conditions struct {
	Location   string  `json:"location"`
	TempC      float64 `json:"temperature_c"`
	TempF      float64 `json:"temperature_f"`
	FeelsLikeC float64 `json:"feels_like_c"`
	Condition  string  `json:"condition"`
	Humidity   int     `json:"humidity"`
	WindKph    float64 `json:"wind_kph"`
	UV         float64 `json:"uv_index"`
	IsDay      bool    `json:"is_day"`
	Error      string  `json:"error,omitempty"`
}

type ForecastDay struct {
	Date         string  `json:"date"`
	MaxTempC     float64 `json:"max_temp_c"`
	MinTempC     float64 `json:"min_temp_c"`
	AvgTempC     float64 `json:"avg_temp_c"`
	Condition    string  `json:"condition"`
	ChanceOfRain int     `json:"chance_of_rain"`
	UV           float64 `json:"uv_index"`
}

type Forecast struct {
	Location string        `json:"location"`
	Days     []ForecastDay `json:"forecast_days"`
	Error    string        `json:"error,omitempty"`
}

// Outdoor is the verdict of Suitability.
type Outdoor struct {
	Suitable bool   `json:"suitable"`
	Reason   string `json:"reason"`
}

// Output is the payload of a handled weather query. Exactly one of
// Current and Forecast is set.
type Output struct {
	Location  string      `json:"location"`
	Current   *Conditions `json:"weather,omitempty"`
	Forecast  *Forecast   `json:"forecast,omitempty"`
	Outdoor   *Outdoor    `json:"outdoor_suitable,omitempty"`
	Formatted string      `json:"formatted"`
	Error     string      `json:"error,omitempty"`
}
