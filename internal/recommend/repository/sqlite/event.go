package sqlite

import (
	"context"
	"fmt"

	"multi-agent-assistant/internal/model"
	"multi-agent-assistant/internal/recommend/repository"
)

const listEventsQuery = `SELECT id, name, type, description, location, date, time FROM events WHERE 1=1`

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListOptions) ([]model.Event, error) {
	query, args := buildListQuery(opt)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]model.Event, 0)
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Type, &e.Description, &e.Location, &e.Date, &e.Time); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func buildListQuery(opt repository.ListOptions) (string, []any) {
	query := listEventsQuery
	var args []any

	if opt.Date != "" {
		query += " AND date = ?"
		args = append(args, opt.Date)
	}
	if opt.Type != "" {
		query += " AND type = ?"
		args = append(args, string(opt.Type))
	}
	return query + " ORDER BY date, time", args
}
