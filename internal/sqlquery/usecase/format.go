package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"multi-agent-assistant/internal/sqlquery"
	"multi-agent-assistant/pkg/textparse"
)

// Format renders rows as a pipe-separated table with a dashed rule under
// the header. Column widths fit the widest rendered value, capped at
// MaxColumnWidth; longer values are cut.
func (uc *implUseCase) Format(columns []string, rows [][]any) string {
	if len(rows) == 0 {
		return sqlquery.NoResultsMessage
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(columns))
		for c := range columns {
			var v any
			if c < len(row) {
				v = row[c]
			}
			cells[r][c] = formatValue(columns[c], v)
		}
	}

	widths := make([]int, len(columns))
	for c, col := range columns {
		w := utf8.RuneCountInString(col)
		for r := range cells {
			if n := utf8.RuneCountInString(cells[r][c]); n > w {
				w = n
			}
		}
		widths[c] = min(w, sqlquery.MaxColumnWidth)
	}

	header := make([]string, len(columns))
	rule := make([]string, len(columns))
	for c, col := range columns {
		header[c] = ljust(col, widths[c])
		rule[c] = strings.Repeat("-", widths[c])
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, strings.Join(header, " | "), strings.Join(rule, "-+-"))
	for r := range cells {
		out := make([]string, len(columns))
		for c := range columns {
			out[c] = ljust(textparse.Truncate(cells[r][c], widths[c], ""), widths[c])
		}
		lines = append(lines, strings.Join(out, " | "))
	}
	return strings.Join(lines, "\n")
}

func formatValue(column string, v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case float64:
		col := strings.ToLower(column)
		if strings.Contains(col, "salary") || strings.Contains(col, "budget") {
			return "$" + humanize.FormatFloat("#,###.##", val)
		}
		return fmt.Sprintf("%.2f", val)
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ljust pads s with spaces to n runes. Header names longer than n are
// left as is.
func ljust(s string, n int) string {
	if pad := n - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
