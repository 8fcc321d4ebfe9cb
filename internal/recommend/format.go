package recommend

import (
	"fmt"
	"strings"

	"multi-agent-assistant/internal/weather"
)

// Format renders a recommendation for display.
func Format(out Output) string {
	banner := strings.Repeat("=", 60)
	rule := strings.Repeat("-", 60)

	lines := []string{
		banner,
		"Event Recommendations for " + out.Location,
		"Date: " + out.Date,
		banner,
	}

	if out.Error != "" {
		lines = append(lines, "\nError: "+out.Error)
		return strings.Join(lines, "\n")
	}

	if w := out.Weather; w != nil && w.Error == "" {
		lines = append(lines, fmt.Sprintf("\nWeather: %s, %sC", w.Condition, weather.Num(w.TempC)))
		verdict := "Not Ideal"
		if ok, _ := weather.Suitability(*w); ok {
			verdict = "Good"
		}
		lines = append(lines, "Outdoor Suitability: "+verdict)
	} else {
		lines = append(lines, "\nWeather: Unavailable")
	}

	lines = append(lines, fmt.Sprintf("\nEvents Found: %d", len(out.Events)))

	text := out.Recommendation
	if text == "" {
		text = NoRecommendation
	}
	lines = append(lines, "\n"+rule, "RECOMMENDATIONS:", rule, text)
	return strings.Join(lines, "\n")
}
