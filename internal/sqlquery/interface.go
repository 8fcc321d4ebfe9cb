package sqlquery

import (
	"context"

	"multi-agent-assistant/internal/agent"
)

// UseCase turns natural-language questions into read-only SQL over the
// company database.
type UseCase interface {
	agent.Handler

	// Query runs the full generate, validate, execute and format pipeline.
	Query(ctx context.Context, question string) (Output, error)

	// Generate asks the LLM for a SQL statement and strips formatting.
	Generate(ctx context.Context, question string) (string, error)

	// Validate rejects statements containing a write keyword.
	Validate(sql string) error

	// Format renders a result set as a fixed-width text table.
	Format(columns []string, rows [][]any) string
}
