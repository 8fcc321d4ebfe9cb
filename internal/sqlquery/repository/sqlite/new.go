package sqlite

import (
	"context"
	"database/sql"

	"multi-agent-assistant/internal/sqlquery/repository"
	"multi-agent-assistant/pkg/sqlitedb"
)

type implRepository struct {
	db *sql.DB
}

var _ repository.Repository = (*implRepository)(nil)

// New opens the company database read-only.
func New(ctx context.Context, path string) (*implRepository, error) {
	db, err := sqlitedb.OpenReadOnly(ctx, path)
	if err != nil {
		return nil, err
	}
	return &implRepository{db: db}, nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}
