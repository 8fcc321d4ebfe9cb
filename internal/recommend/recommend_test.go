package recommend

import (
	"strings"
	"testing"

	"multi-agent-assistant/internal/model"
	"multi-agent-assistant/internal/weather"
)

func TestDetectPreference(t *testing.T) {
	cases := map[string]model.EventType{
		"any OUTDOOR events today?":          model.EventTypeOutdoor,
		"indoor things to do":                model.EventTypeIndoor,
		"indoor or outdoor, I don't mind":    model.EventTypeOutdoor,
		"What events should I attend today?": "",
	}
	for q, want := range cases {
		if got := DetectPreference(q); got != want {
			t.Errorf("DetectPreference(%q) = %q, want %q", q, got, want)
		}
	}
}

func TestIndoorOnly(t *testing.T) {
	in := []model.Event{
		{Name: "Yoga", Type: model.EventTypeOutdoor},
		{Name: "Meetup", Type: model.EventTypeIndoor},
		{Name: "Festival", Type: model.EventTypeOutdoor},
		{Name: "Museum", Type: model.EventTypeIndoor},
	}
	got := IndoorOnly(in)
	if len(got) != 2 || got[0].Name != "Meetup" || got[1].Name != "Museum" {
		t.Errorf("got %+v", got)
	}
}

func TestFormat(t *testing.T) {
	out := Output{
		Location:       "Singapore",
		Date:           "2024-05-01",
		Weather:        &weather.Conditions{Condition: "Sunny", TempC: 22, Humidity: 50},
		Events:         []model.Event{{Name: "a"}, {Name: "b"}},
		Recommendation: "Go to the park.",
	}

	banner := strings.Repeat("=", 60)
	rule := strings.Repeat("-", 60)
	want := strings.Join([]string{
		banner,
		"Event Recommendations for Singapore",
		"Date: 2024-05-01",
		banner,
		"\nWeather: Sunny, 22.0C",
		"Outdoor Suitability: Good",
		"\nEvents Found: 2",
		"\n" + rule,
		"RECOMMENDATIONS:",
		rule,
		"Go to the park.",
	}, "\n")

	if got := Format(out); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestFormat_Variants(t *testing.T) {
	rainy := Format(Output{Weather: &weather.Conditions{Condition: "Heavy rain", TempC: 20}})
	if !strings.Contains(rainy, "Outdoor Suitability: Not Ideal") {
		t.Errorf("rainy:\n%s", rainy)
	}
	if !strings.HasSuffix(rainy, NoRecommendation) {
		t.Errorf("expected placeholder recommendation:\n%s", rainy)
	}

	noWeather := Format(Output{Weather: &weather.Conditions{Error: "x"}})
	if !strings.Contains(noWeather, "\nWeather: Unavailable") {
		t.Errorf("no weather:\n%s", noWeather)
	}

	failed := Format(Output{Location: "Oslo", Error: "Recommendation error: boom"})
	if !strings.HasSuffix(failed, "\nError: Recommendation error: boom") || strings.Contains(failed, "RECOMMENDATIONS") {
		t.Errorf("failed:\n%s", failed)
	}
}
