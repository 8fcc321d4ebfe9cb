package recommend

import (
	"strings"

	"multi-agent-assistant/internal/model"
)

// DetectPreference looks for an explicit outdoor or indoor request.
// Outdoor wins when both appear. The zero value means no preference.
func DetectPreference(query string) model.EventType {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "outdoor"):
		return model.EventTypeOutdoor
	case strings.Contains(lower, "indoor"):
		return model.EventTypeIndoor
	}
	return ""
}

// IndoorOnly keeps the indoor events, preserving order.
func IndoorOnly(events []model.Event) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if e.Type == model.EventTypeIndoor {
			out = append(out, e)
		}
	}
	return out
}
