package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"multi-agent-assistant/pkg/textparse"
)

// WantsForecast reports whether the question asks about upcoming days.
func WantsForecast(question string) bool {
	return textparse.ContainsAny(question, forecastKeywords...)
}

// Suitability decides whether the conditions suit outdoor activities.
// The first failing rule is reported.
func Suitability(c Conditions) (bool, string) {
	if c.Error != "" {
		return false, MsgUnavailable
	}

	if textparse.ContainsAny(c.Condition, badConditions...) {
		return false, fmt.Sprintf("Weather condition (%s) not suitable for outdoor activities", c.Condition)
	}
	if c.TempC < minComfortTempC {
		return false, fmt.Sprintf("Temperature too cold (%sC) for comfortable outdoor activities", Num(c.TempC))
	}
	if c.TempC > maxComfortTempC {
		return false, fmt.Sprintf("Temperature too hot (%sC) for outdoor activities", Num(c.TempC))
	}
	if c.Humidity > maxHumidity {
		return false, fmt.Sprintf("Humidity too high (%d%%) for comfortable outdoor activities", c.Humidity)
	}
	return true, fmt.Sprintf("Good weather for outdoor activities (%s, %sC)", c.Condition, Num(c.TempC))
}

// Num renders a reading the way the weather service reports it: whole
// values keep one decimal place, others are printed as is.
func Num(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatCurrent renders current conditions for display.
func FormatCurrent(c Conditions) string {
	if c.Error != "" {
		return "Weather Error: " + c.Error
	}

	timeOfDay := "Night"
	if c.IsDay {
		timeOfDay = "Day"
	}

	lines := []string{
		"Location: " + c.Location,
		fmt.Sprintf("Temperature: %sC (%sF)", Num(c.TempC), Num(c.TempF)),
		fmt.Sprintf("Feels Like: %sC", Num(c.FeelsLikeC)),
		"Condition: " + c.Condition,
		fmt.Sprintf("Humidity: %d%%", c.Humidity),
		fmt.Sprintf("Wind: %s km/h", Num(c.WindKph)),
		"UV Index: " + Num(c.UV),
		"Time: " + timeOfDay,
	}
	return strings.Join(lines, "\n")
}

// FormatForecast renders a forecast for display.
func FormatForecast(f Forecast) string {
	if f.Error != "" {
		return "Forecast Error: " + f.Error
	}

	lines := []string{
		"Weather Forecast for " + f.Location,
		strings.Repeat("-", 50),
	}
	for _, d := range f.Days {
		lines = append(lines,
			"\n"+d.Date+":",
			fmt.Sprintf("  High: %sC / Low: %sC", Num(d.MaxTempC), Num(d.MinTempC)),
			"  Condition: "+d.Condition,
			fmt.Sprintf("  Chance of Rain: %d%%", d.ChanceOfRain),
		)
	}
	return strings.Join(lines, "\n")
}
