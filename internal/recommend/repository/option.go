package repository

import "multi-agent-assistant/internal/model"

// ListOptions filters ListEvents. Zero values match everything.
type ListOptions struct {
	Date string // YYYY-MM-DD
	Type model.EventType
}
