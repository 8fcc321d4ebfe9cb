package weather

import (
	"strings"
	"testing"
)

func TestSuitability(t *testing.T) {
	tests := []struct {
		name     string
		in       Conditions
		suitable bool
		reason   string
	}{
		{"error", Conditions{Error: "boom"}, false, MsgUnavailable},
		{"rain", Conditions{TempC: 22, Condition: "Light rain shower", Humidity: 50}, false,
			"Weather condition (Light rain shower) not suitable for outdoor activities"},
		{"heavy beats cold", Conditions{TempC: 2, Condition: "Heavy cloud", Humidity: 90}, false,
			"Weather condition (Heavy cloud) not suitable for outdoor activities"},
		{"cold", Conditions{TempC: 5, Condition: "Clear", Humidity: 40}, false,
			"Temperature too cold (5.0C) for comfortable outdoor activities"},
		{"hot", Conditions{TempC: 38.5, Condition: "Sunny", Humidity: 40}, false,
			"Temperature too hot (38.5C) for outdoor activities"},
		{"humid", Conditions{TempC: 30, Condition: "Partly cloudy", Humidity: 90}, false,
			"Humidity too high (90%) for comfortable outdoor activities"},
		{"good", Conditions{TempC: 22, Condition: "Sunny", Humidity: 50}, true,
			"Good weather for outdoor activities (Sunny, 22.0C)"},
		{"boundaries are fine", Conditions{TempC: 10, Condition: "Clear", Humidity: 85}, true,
			"Good weather for outdoor activities (Clear, 10.0C)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := Suitability(tc.in)
			if ok != tc.suitable {
				t.Errorf("suitable = %v, want %v", ok, tc.suitable)
			}
			if reason != tc.reason {
				t.Errorf("reason = %q, want %q", reason, tc.reason)
			}
		})
	}
}

func TestSuitability_ColdMentionsTemperature(t *testing.T) {
	ok, reason := Suitability(Conditions{TempC: 5, Condition: "clear", Humidity: 40})
	if ok || !strings.Contains(reason, "Temperature") {
		t.Errorf("got (%v, %q)", ok, reason)
	}
}

func TestWantsForecast(t *testing.T) {
	cases := map[string]bool{
		"What's the weather forecast for London?": true,
		"Will it rain TOMORROW in Paris":          true,
		"weather next week":                       true,
		"What's the weather in Tokyo?":            false,
	}
	for q, want := range cases {
		if got := WantsForecast(q); got != want {
			t.Errorf("WantsForecast(%q) = %v, want %v", q, got, want)
		}
	}
}

func TestNum(t *testing.T) {
	cases := map[float64]string{22: "22.0", 22.5: "22.5", -3: "-3.0", 0.25: "0.25"}
	for in, want := range cases {
		if got := Num(in); got != want {
			t.Errorf("Num(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatCurrent(t *testing.T) {
	got := FormatCurrent(Conditions{
		Location: "Singapore, Singapore", TempC: 31, TempF: 87.8, FeelsLikeC: 36.2,
		Condition: "Partly cloudy", Humidity: 70, WindKph: 11.2, UV: 7, IsDay: true,
	})
	want := strings.Join([]string{
		"Location: Singapore, Singapore",
		"Temperature: 31.0C (87.8F)",
		"Feels Like: 36.2C",
		"Condition: Partly cloudy",
		"Humidity: 70%",
		"Wind: 11.2 km/h",
		"UV Index: 7.0",
		"Time: Day",
	}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	if got := FormatCurrent(Conditions{Error: MsgTimeout}); got != "Weather Error: "+MsgTimeout {
		t.Errorf("error form = %q", got)
	}
}

func TestFormatForecast(t *testing.T) {
	got := FormatForecast(Forecast{
		Location: "London, United Kingdom",
		Days: []ForecastDay{
			{Date: "2024-05-01", MaxTempC: 18.2, MinTempC: 9, Condition: "Patchy rain", ChanceOfRain: 80},
		},
	})
	want := "Weather Forecast for London, United Kingdom\n" + strings.Repeat("-", 50) +
		"\n\n2024-05-01:\n  High: 18.2C / Low: 9.0C\n  Condition: Patchy rain\n  Chance of Rain: 80%"
	if got != want {
		t.Errorf("got\n%q\nwant\n%q", got, want)
	}

	if got := FormatForecast(Forecast{Error: "x"}); got != "Forecast Error: x" {
		t.Errorf("error form = %q", got)
	}
}
