package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"multi-agent-assistant/internal/seed"
	"multi-agent-assistant/internal/sqlquery"
	"multi-agent-assistant/internal/sqlquery/repository/sqlite"
	"multi-agent-assistant/pkg/llmprovider"
	pkgLog "multi-agent-assistant/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLM struct {
	reply string
	err   error
	req   *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage(llmprovider.RoleAssistant, m.reply)}, nil
}

func newSeeded(t *testing.T, llm llmprovider.Generator) *implUseCase {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "company.db")
	require.NoError(t, seed.Company(ctx, path))

	repo, err := sqlite.New(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return New(pkgLog.NewNop(), llm, repo)
}

func TestQuery_AverageSalary(t *testing.T) {
	llm := &mockLLM{reply: "```sql\nSELECT AVG(salary) AS avg_salary\nFROM employees\nWHERE department = 'Engineering'\n```"}
	uc := newSeeded(t, llm)

	out, err := uc.Query(context.Background(), "What is the average salary in Engineering?")
	require.NoError(t, err)

	assert.Equal(t, "SELECT AVG(salary) AS avg_salary FROM employees WHERE department = 'Engineering'", out.SQL)
	assert.Equal(t, []string{"avg_salary"}, out.Columns)
	assert.Contains(t, out.Formatted, "$86,250.00")
	assert.Empty(t, out.Error)

	require.NotNil(t, llm.req)
	assert.Equal(t, sqlquery.Temperature, llm.req.Temperature)
	assert.Equal(t, "Generate SQL for: What is the average salary in Engineering?", llm.req.Messages[0].Parts[0].Text)
}

func TestQuery_Rejected(t *testing.T) {
	uc := newSeeded(t, &mockLLM{reply: "DELETE FROM employees"})

	out, err := uc.Query(context.Background(), "remove everyone")
	assert.True(t, IsRejected(err))
	assert.Equal(t, "Query rejected: DELETE operations are not allowed", out.Error)
	assert.Empty(t, out.Formatted)

	// table untouched
	_, rows, err := uc.repo.Query(context.Background(), "SELECT COUNT(*) FROM employees")
	require.NoError(t, err)
	assert.EqualValues(t, 12, rows[0][0])
}

func TestQuery_Errors(t *testing.T) {
	tests := []struct {
		name   string
		llm    *mockLLM
		prefix string
	}{
		{"llm failure", &mockLLM{err: errors.New("boom")}, "Query error: "},
		{"empty sql", &mockLLM{reply: "```sql\n```"}, "Query error: model returned no SQL"},
		{"bad sql", &mockLLM{reply: "SELEC nonsense"}, "Query error: "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newSeeded(t, tc.llm)
			out, err := uc.Query(context.Background(), "anything")
			assert.Error(t, err)
			assert.True(t, strings.HasPrefix(out.Error, tc.prefix), out.Error)
		})
	}
}

func TestQuery_EmptyResult(t *testing.T) {
	uc := newSeeded(t, &mockLLM{reply: "SELECT name FROM employees WHERE salary > 1000000"})
	out, err := uc.Query(context.Background(), "who earns a million?")
	require.NoError(t, err)
	assert.Equal(t, sqlquery.NoResultsMessage, out.Formatted)
}

func TestHandle(t *testing.T) {
	uc := newSeeded(t, &mockLLM{reply: "DROP TABLE employees"})
	res := uc.Handle(context.Background(), "drop it")
	assert.Equal(t, "Query rejected: DROP operations are not allowed", res.Error)
	_, ok := res.Payload.(sqlquery.Output)
	assert.True(t, ok)
}

func TestValidate(t *testing.T) {
	uc := New(pkgLog.NewNop(), nil, nil)

	tests := []struct {
		sql     string
		keyword string
	}{
		{"SELECT * FROM employees", ""},
		{"drop table employees", "DROP"},
		{"SELECT 1; Delete FROM employees", "DELETE"},
		{"UPDATE employees SET salary = 0", "UPDATE"},
		{"insert into x values (1)", "INSERT"},
		{"ALTER TABLE x ADD y", "ALTER"},
		{"TRUNCATE x", "TRUNCATE"},
		{"CREATE TABLE x (id int)", "CREATE"},
		// substring match: created_at trips the create rule
		{"SELECT created_at FROM x", "CREATE"},
		// first listed keyword wins
		{"INSERT INTO t SELECT * FROM u; DROP TABLE u", "DROP"},
	}

	for _, tc := range tests {
		t.Run(tc.sql, func(t *testing.T) {
			err := uc.Validate(tc.sql)
			if tc.keyword == "" {
				assert.NoError(t, err)
				return
			}
			var rej *sqlquery.RejectedError
			require.ErrorAs(t, err, &rej)
			assert.Equal(t, tc.keyword, rej.Keyword)
		})
	}
}

func TestCleanSQL(t *testing.T) {
	assert.Equal(t, "SELECT 1", cleanSQL("```SQL\n  SELECT 1  \n```"))
	assert.Equal(t, "SELECT a FROM b WHERE c = 1", cleanSQL("SELECT a\n\n  FROM b\n WHERE c = 1"))
	assert.Equal(t, "", cleanSQL("```\n```"))
}

func TestFormat(t *testing.T) {
	uc := New(pkgLog.NewNop(), nil, nil)

	got := uc.Format(
		[]string{"name", "salary", "rating", "note"},
		[][]any{
			{"Alice", 95000.0, 4.5, nil},
			{[]byte("Bob"), 1234567.891, 3.0, "a very long note that goes past the cap"},
		},
	)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 4)

	pad := func(s string, n int) string { return s + strings.Repeat(" ", n-len(s)) }
	row := func(a, b, c, d string) string {
		return strings.Join([]string{pad(a, 5), pad(b, 13), pad(c, 6), pad(d, 25)}, " | ")
	}

	assert.Equal(t, row("name", "salary", "rating", "note"), lines[0])
	assert.Equal(t, strings.Join([]string{
		strings.Repeat("-", 5), strings.Repeat("-", 13), strings.Repeat("-", 6), strings.Repeat("-", 25),
	}, "-+-"), lines[1])
	assert.Equal(t, row("Alice", "$95,000.00", "4.50", "NULL"), lines[2])
	assert.Equal(t, row("Bob", "$1,234,567.89", "3.00", "a very long note that goe"), lines[3])
}

func TestFormat_NoRows(t *testing.T) {
	uc := New(pkgLog.NewNop(), nil, nil)
	assert.Equal(t, sqlquery.NoResultsMessage, uc.Format([]string{"a"}, nil))
}
