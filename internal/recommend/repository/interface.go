package repository

import (
	"context"

	"multi-agent-assistant/internal/model"
)

// Repository reads the events store.
type Repository interface {
	ListEvents(ctx context.Context, opt ListOptions) ([]model.Event, error)
	Close() error
}
