package sqlquery

// Output is the result of one natural-language query.
type Output struct {
	SQL       string   `json:"sql"`
	Columns   []string `json:"columns,omitempty"`
	Rows      [][]any  `json:"rows,omitempty"`
	Formatted string   `json:"formatted"`
	Error     string   `json:"error,omitempty"`
}
