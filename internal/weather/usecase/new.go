package usecase

import (
	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/weather"
	pkgLog "multi-agent-assistant/pkg/log"
	"multi-agent-assistant/pkg/weatherapi"
)

type implUseCase struct {
	l      pkgLog.Logger
	client weatherapi.IWeather
}

var _ weather.UseCase = (*implUseCase)(nil)

// New creates a new weather UseCase. A nil client makes every lookup
// fail as if the API key were rejected.
func New(l pkgLog.Logger, client weatherapi.IWeather) *implUseCase {
	return &implUseCase{
		l:      l,
		client: client,
	}
}

func (uc *implUseCase) Label() agent.Label {
	return agent.LabelWeather
}
