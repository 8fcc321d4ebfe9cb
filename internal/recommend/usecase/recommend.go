package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/model"
	"multi-agent-assistant/internal/recommend"
	"multi-agent-assistant/internal/recommend/repository"
	"multi-agent-assistant/internal/weather"
	"multi-agent-assistant/pkg/datemath"
	"multi-agent-assistant/pkg/textparse"
)

// Handle resolves location, preference and date from the question and
// returns a formatted recommendation.
func (uc *implUseCase) Handle(ctx context.Context, query string) agent.Result {
	date, _ := uc.dates.Detect(query, uc.now())

	out := uc.Recommend(ctx, recommend.Input{
		Location:   textparse.ExtractLocation(datemath.StripPhrases(query), recommend.DefaultLocation),
		Date:       date.Format(datemath.DateLayout),
		Preference: recommend.DetectPreference(query),
	})
	return agent.Result{
		Formatted: out.Formatted,
		Payload:   out,
		Error:     out.Error,
	}
}

func (uc *implUseCase) Recommend(ctx context.Context, input recommend.Input) recommend.Output {
	if input.Date == "" {
		input.Date = uc.dates.Today(uc.now()).Format(datemath.DateLayout)
	}
	out := recommend.Output{
		Location:   input.Location,
		Date:       input.Date,
		Preference: input.Preference,
		Events:     []model.Event{},
	}

	var (
		conditions weather.Conditions
		events     []model.Event
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		conditions = uc.weather.Current(gctx, input.Location)
		return nil
	})
	g.Go(func() error {
		var err error
		events, err = uc.repo.ListEvents(gctx, repository.ListOptions{Date: input.Date})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "%s: list events: %v", recommend.LogPrefixRecommend, err)
		out.Error = fmt.Sprintf("Recommendation error: %v", err)
		out.Formatted = recommend.Format(out)
		return out
	}

	out.Weather = &conditions
	if events != nil {
		out.Events = events
	}

	if input.Preference == "" && conditions.Error == "" {
		if ok, reason := weather.Suitability(conditions); !ok {
			uc.l.Infof(ctx, "%s: indoor only: %s", recommend.LogPrefixRecommend, reason)
			out.Events = recommend.IndoorOnly(events)
		}
	}

	out.Recommendation = uc.synthesize(ctx, conditions, out.Events, input.Preference)
	out.Formatted = recommend.Format(out)
	return out
}
