package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"multi-agent-assistant/internal/agent"
	"multi-agent-assistant/internal/sqlquery"
)

// Handle implements agent.Handler.
func (uc *implUseCase) Handle(ctx context.Context, query string) agent.Result {
	out, _ := uc.Query(ctx, query)
	return agent.Result{
		Formatted: out.Formatted,
		Payload:   out,
		Error:     out.Error,
	}
}

// Query generates, validates, executes and formats. The returned Output
// is always populated; err mirrors Output.Error for callers that want it.
func (uc *implUseCase) Query(ctx context.Context, question string) (sqlquery.Output, error) {
	var out sqlquery.Output

	if strings.TrimSpace(question) == "" {
		out.Error = fmt.Sprintf(sqlquery.QueryErrorFormat, sqlquery.ErrEmptyQuestion)
		return out, sqlquery.ErrEmptyQuestion
	}

	sql, err := uc.Generate(ctx, question)
	if err != nil {
		uc.l.Warnf(ctx, "%s: generate failed: %v", sqlquery.LogPrefixQuery, err)
		out.Error = fmt.Sprintf(sqlquery.QueryErrorFormat, err)
		return out, err
	}
	out.SQL = sql

	if err := uc.Validate(sql); err != nil {
		uc.l.Warnf(ctx, "%s: %v: %s", sqlquery.LogPrefixQuery, err, sql)
		out.Error = err.Error()
		return out, err
	}

	columns, rows, err := uc.repo.Query(ctx, sql)
	if err != nil {
		uc.l.Warnf(ctx, "%s: execute failed: %v", sqlquery.LogPrefixQuery, err)
		out.Error = fmt.Sprintf(sqlquery.QueryErrorFormat, err)
		return out, fmt.Errorf("execute query: %w", err)
	}

	out.Columns = columns
	out.Rows = rows
	out.Formatted = uc.Format(columns, rows)
	uc.l.Infof(ctx, "%s: %d row(s) for %q", sqlquery.LogPrefixQuery, len(rows), sql)
	return out, nil
}

// Validate rejects any statement containing a write keyword, matched as a
// case-insensitive substring.
func (uc *implUseCase) Validate(sql string) error {
	lower := strings.ToLower(sql)
	for _, kw := range sqlquery.ForbiddenKeywords {
		if strings.Contains(lower, kw) {
			return &sqlquery.RejectedError{Keyword: strings.ToUpper(kw)}
		}
	}
	return nil
}

// IsRejected reports whether err came from Validate.
func IsRejected(err error) bool {
	return errors.Is(err, sqlquery.ErrQueryRejected)
}
