package repository

import "context"

// Repository executes read-only statements against the company database.
type Repository interface {
	// Query returns column names and raw row values as produced by the driver.
	Query(ctx context.Context, sql string) (columns []string, rows [][]any, err error)
	Close() error
}
