package usecase

import (
	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/sqlquery"
	"multi-agent-assistant/internal/sqlquery/repository"
	"multi-agent-assistant/pkg/llmprovider"
	pkgLog "multi-agent-assistant/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	llm  llmprovider.Generator
	repo repository.Repository
}

var _ sqlquery.UseCase = (*implUseCase)(nil)

// New creates a new SQL UseCase instance.
func New(l pkgLog.Logger, llm llmprovider.Generator, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		llm:  llm,
		repo: repo,
	}
}

func (uc *implUseCase) Label() agent.Label {
	return agent.LabelSQL
}
