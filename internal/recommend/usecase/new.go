package usecase

import (
	"time"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/recommend"
	"multi-agent-assistant/internal/recommend/repository"
	"multi-agent-assistant/internal/weather"
	"multi-agent-assistant/pkg/datemath"
	"multi-agent-assistant/pkg/llmprovider"
	pkgLog "multi-agent-assistant/pkg/log"
)

type implUseCase struct {
	l       pkgLog.Logger
	llm     llmprovider.Generator
	weather weather.UseCase
	repo    repository.Repository
	dates   *datemath.Parser
	now     func() time.Time
}

var _ recommend.UseCase = (*implUseCase)(nil)

// New creates a new recommendation UseCase instance.
func New(
	l pkgLog.Logger,
	llm llmprovider.Generator,
	weatherUC weather.UseCase,
	repo repository.Repository,
	dates *datemath.Parser,
) *implUseCase {
	return &implUseCase{
		l:       l,
		llm:     llm,
		weather: weatherUC,
		repo:    repo,
		dates:   dates,
		now:     time.Now,
	}
}

func (uc *implUseCase) Label() agent.Label {
	return agent.LabelRecommend
}
