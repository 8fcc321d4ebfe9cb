package app

import (
	"context"
	"errors"
	"fmt"

	"multi-agent-assistant/internal/docqa"
	docqaRepo "multi-agent-assistant/internal/docqa/repository"
	docqaMemory "multi-agent-assistant/internal/docqa/repository/memory"
	docqaQdrant "multi-agent-assistant/internal/docqa/repository/qdrant"
	docqaUC "multi-agent-assistant/internal/docqa/usecase"
	"multi-agent-assistant/internal/imagegen"
	imagegenUC "multi-agent-assistant/internal/imagegen/usecase"
	eventsRepo "multi-agent-assistant/internal/recommend/repository/sqlite"
	recommendUC "multi-agent-assistant/internal/recommend/usecase"
	companyRepo "multi-agent-assistant/internal/sqlquery/repository/sqlite"
	sqlqueryUC "multi-agent-assistant/internal/sqlquery/usecase"
	weatherUC "multi-agent-assistant/internal/weather/usecase"
	"multi-agent-assistant/pkg/datemath"
	"multi-agent-assistant/pkg/openai"
	pkgQdrant "multi-agent-assistant/pkg/qdrant"
	"multi-agent-assistant/pkg/voyage"
	"multi-agent-assistant/pkg/weatherapi"
)

const (
	EmbeddingVoyage = "voyage"
	StoreQdrant     = "qdrant"
)

func (a *App) setupSQL(ctx context.Context) {
	repo, err := companyRepo.New(ctx, a.cfg.Database.CompanyPath)
	if err != nil {
		a.disable(ctx, "company database", err)
		return
	}
	a.closers = append(a.closers, repo.Close)
	a.handlers = append(a.handlers, sqlqueryUC.New(a.l, a.llm, repo))
}

func (a *App) setupRecommendAndWeather(ctx context.Context) {
	var client weatherapi.IWeather
	wc, err := weatherapi.New(weatherapi.Config{
		APIKey:  a.cfg.Weather.APIKey,
		BaseURL: a.cfg.Weather.BaseURL,
		Timeout: parseDuration(a.cfg.Weather.Timeout, weatherapi.DefaultTimeout),
	})
	if err != nil {
		a.l.Warnf(ctx, "internal.app: weather client: %v", err)
	} else {
		client = wc
	}
	weather := weatherUC.New(a.l, client)
	a.handlers = append(a.handlers, weather)

	dates, err := datemath.NewParser(a.cfg.Timezone)
	if err != nil {
		a.l.Warnf(ctx, "internal.app: %v, using UTC", err)
		dates, _ = datemath.NewParser("UTC")
	}

	repo, err := eventsRepo.New(ctx, a.cfg.Database.EventsPath)
	if err != nil {
		a.disable(ctx, "events database", err)
		return
	}
	a.closers = append(a.closers, repo.Close)
	a.handlers = append(a.handlers, recommendUC.New(a.l, a.llm, weather, repo, dates))
}

func (a *App) openAI() (*openai.Client, error) {
	return openai.New(openai.Config{
		APIKey:         a.cfg.OpenAI.APIKey,
		BaseURL:        a.cfg.OpenAI.BaseURL,
		ChatModel:      a.cfg.OpenAI.ChatModel,
		EmbeddingModel: a.cfg.OpenAI.EmbeddingModel,
		ImageModel:     a.cfg.OpenAI.ImageModel,
	})
}

func (a *App) setupImage(ctx context.Context) {
	var images imagegen.ImageClient
	if client, err := a.openAI(); err != nil {
		a.l.Warnf(ctx, "internal.app: image client: %v", err)
	} else {
		images = client
	}

	uc, err := imagegenUC.New(a.l, a.llm, images, imagegen.Config{
		OutputDir:       a.cfg.Image.OutputDir,
		Model:           a.cfg.OpenAI.ImageModel,
		Size:            a.cfg.Image.Size,
		Quality:         a.cfg.Image.Quality,
		DownloadTimeout: parseDuration(a.cfg.Image.DownloadTimeout, imagegen.DefaultDownloadTimeout),
	})
	if err != nil {
		a.disable(ctx, "image generation", err)
		return
	}
	a.handlers = append(a.handlers, uc)
}

func (a *App) setupDocQA(ctx context.Context) {
	embedder, err := a.embedder()
	if err != nil {
		a.disable(ctx, "document Q&A", err)
		return
	}

	var store docqaRepo.VectorStore
	if a.cfg.RAG.VectorStore == StoreQdrant {
		store = docqaQdrant.New(pkgQdrant.NewClient(a.cfg.Qdrant.URL), a.cfg.Qdrant.CollectionName, a.cfg.Qdrant.VectorSize, a.l)
	} else {
		store = docqaMemory.New()
	}

	a.index = docqaUC.NewIndex(a.l, embedder, store, docqa.IndexConfig{
		DocumentPath: a.cfg.RAG.DocumentPath,
		ChunkSize:    a.cfg.RAG.ChunkSize,
		ChunkOverlap: a.cfg.RAG.ChunkOverlap,
	})
}

func (a *App) embedder() (docqa.Embedder, error) {
	if a.cfg.RAG.EmbeddingProvider == EmbeddingVoyage {
		if a.cfg.Voyage.APIKey == "" {
			return nil, errors.New("voyage api key is not set")
		}
		client, err := voyage.New(voyage.Config{APIKey: a.cfg.Voyage.APIKey, Model: a.cfg.Voyage.Model})
		if err != nil {
			return nil, fmt.Errorf("voyage: %w", err)
		}
		return client, nil
	}

	client, err := a.openAI()
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	return client, nil
}
