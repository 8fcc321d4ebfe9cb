package usecase

import (
	"context"
	"fmt"
	"strings"

	"multi-agent-assistant/internal/sqlquery"
	"multi-agent-assistant/pkg/llmprovider"
)

// Generate asks the LLM for SQL and normalises it to a single line.
func (uc *implUseCase) Generate(ctx context.Context, question string) (string, error) {
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.NewTextRequest(
		sqlquery.PromptSystem,
		fmt.Sprintf(sqlquery.PromptUser, question),
		sqlquery.Temperature,
		0,
	))
	if err != nil {
		return "", fmt.Errorf("%s: %w", sqlquery.LogPrefixGenerate, err)
	}

	sql := cleanSQL(resp.Text())
	if sql == "" {
		return "", sqlquery.ErrEmptySQL
	}
	return sql, nil
}

// cleanSQL drops markdown fences and joins the non-empty trimmed lines
// with single spaces.
func cleanSQL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```sql", "")
	s = strings.ReplaceAll(s, "```SQL", "")
	s = strings.ReplaceAll(s, "```", "")

	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
