package usecase

import (
	"context"
	"fmt"
	"strings"

	"multi-agent-assistant/internal/model"
	"multi-agent-assistant/internal/recommend"
	"multi-agent-assistant/internal/weather"
	"multi-agent-assistant/pkg/llmprovider"
)

// synthesize asks the LLM for a recommendation. Provider failures are
// folded into the returned text.
func (uc *implUseCase) synthesize(ctx context.Context, w weather.Conditions, events []model.Event, pref model.EventType) string {
	req := llmprovider.NewTextRequest(
		recommend.PromptSystem,
		fmt.Sprintf(recommend.PromptUser, buildContext(w, events, pref)),
		recommend.Temperature,
		recommend.MaxTokens,
	)

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", recommend.LogPrefixSynthesize, err)
		return fmt.Sprintf("Unable to generate recommendation: %v", err)
	}
	return resp.Text()
}

func buildContext(w weather.Conditions, events []model.Event, pref model.EventType) string {
	var b strings.Builder

	if w.Error == "" {
		b.WriteString("\nCurrent Weather:\n")
		fmt.Fprintf(&b, "- Location: %s\n", w.Location)
		fmt.Fprintf(&b, "- Temperature: %sC (%sF)\n", weather.Num(w.TempC), weather.Num(w.TempF))
		fmt.Fprintf(&b, "- Condition: %s\n", w.Condition)
		fmt.Fprintf(&b, "- Humidity: %d%%\n", w.Humidity)
		fmt.Fprintf(&b, "- Feels Like: %sC\n", weather.Num(w.FeelsLikeC))
	} else {
		b.WriteString("Weather: Unable to retrieve weather data")
	}

	if len(events) > 0 {
		b.WriteString("\nAvailable Events:\n")
		for _, e := range events {
			fmt.Fprintf(&b, "- %s (%s)\n", e.Name, e.Type)
			fmt.Fprintf(&b, "  Description: %s\n", e.Description)
			fmt.Fprintf(&b, "  Location: %s\n", e.Location)
			fmt.Fprintf(&b, "  Time: %s\n\n", e.Time)
		}
	} else {
		b.WriteString("\nNo events found for the specified criteria.")
	}

	if pref != "" {
		fmt.Fprintf(&b, "\nUser Preference: %s", pref)
	}
	return b.String()
}
