package usecase

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/imagegen"
	"multi-agent-assistant/pkg/llmprovider"
	pkgLog "multi-agent-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	llm      llmprovider.Generator
	images   imagegen.ImageClient
	download *resty.Client
	cfg      imagegen.Config
	now      func() time.Time
}

var _ imagegen.UseCase = (*implUseCase)(nil)

// New creates the image UseCase and its output directory. images may be
// nil, in which case generation reports a missing API key.
func New(l pkgLog.Logger, llm llmprovider.Generator, images imagegen.ImageClient, cfg imagegen.Config) (*implUseCase, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = imagegen.DefaultOutputDir
	}
	if cfg.Model == "" {
		cfg.Model = imagegen.DefaultModel
	}
	if cfg.Size == "" {
		cfg.Size = imagegen.DefaultSize
	}
	if cfg.Quality == "" {
		cfg.Quality = imagegen.DefaultQuality
	}
	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = imagegen.DefaultDownloadTimeout
	}
	if !imagegen.ValidSize(cfg.Size) {
		return nil, fmt.Errorf("%w: %s", imagegen.ErrInvalidSize, cfg.Size)
	}
	if !imagegen.ValidQuality(cfg.Quality) {
		return nil, fmt.Errorf("%w: %s", imagegen.ErrInvalidQuality, cfg.Quality)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	return &implUseCase{
		l:        l,
		llm:      llm,
		images:   images,
		download: resty.New().SetTimeout(cfg.DownloadTimeout),
		cfg:      cfg,
		now:      time.Now,
	}, nil
}

func (uc *implUseCase) Label() agent.Label {
	return agent.LabelImage
}
