package recommend

import (
	"multi-agent-assistant/internal/model"
	"multi-agent-assistant/internal/weather"
)

// Input holds the resolved parameters of a recommendation.
type Input struct {
	Location   string
	Date       string // YYYY-MM-DD
	Preference model.EventType
}

type Output struct {
	Location       string              `json:"location"`
	Date           string              `json:"date"`
	Weather        *weather.Conditions `json:"weather,omitempty"`
	Events         []model.Event       `json:"events"`
	Preference     model.EventType     `json:"preference,omitempty"`
	Recommendation string              `json:"recommendation"`
	Formatted      string              `json:"formatted"`
	Error          string              `json:"error,omitempty"`
}
