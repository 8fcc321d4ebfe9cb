package weather

// Log prefixes
const (
	LogPrefixCurrent  = "internal.weather.Current"
	LogPrefixForecast = "internal.weather.Forecast"
)

const (
	DefaultLocation     = "New York"
	DefaultForecastDays = 3
	MaxForecastDays     = 10
)

// User-facing error texts.
const (
	MsgTimeout         = "Weather API request timed out. Please try again."
	MsgInvalidLocation = "Invalid location: %s"
	MsgInvalidKey      = "Invalid API key for weather service."
	MsgAPIError        = "Weather API error: %v"
	MsgNetworkError    = "Network error: %v"
	MsgUnexpected      = "Unexpected error: %v"
	MsgUnavailable     = "Unable to determine - weather data unavailable"
)

var (
	forecastKeywords = []string{"forecast", "tomorrow", "next"}
	badConditions    = []string{"rain", "storm", "snow", "sleet", "thunder", "heavy"}
)

const (
	minComfortTempC = 10
	maxComfortTempC = 35
	maxHumidity     = 85
)
