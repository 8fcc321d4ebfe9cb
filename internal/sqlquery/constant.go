package sqlquery

// Log prefixes
const (
	LogPrefixQuery    = "internal.sqlquery.Query"
	LogPrefixGenerate = "internal.sqlquery.Generate"
)

const (
	Temperature = 0.1

	// MaxColumnWidth caps each rendered column.
	MaxColumnWidth = 25

	NoResultsMessage = "No results found."
	QueryErrorFormat = "Query error: %v"
)

// ForbiddenKeywords are checked in order; the first hit is reported.
var ForbiddenKeywords = []string{"drop", "delete", "update", "insert", "alter", "truncate", "create"}

const Schema = `
Database Schema:

Table: employees
Columns:
- id (INTEGER PRIMARY KEY)
- name (TEXT) - Employee full name
- department (TEXT) - Department name
- salary (REAL) - Annual salary
- hire_date (TEXT) - Date hired (YYYY-MM-DD)
- email (TEXT) - Employee email

Table: departments
Columns:
- id (INTEGER PRIMARY KEY)
- name (TEXT) - Department name
- budget (REAL) - Annual department budget
- manager_id (INTEGER) - ID of department manager

Table: projects
Columns:
- id (INTEGER PRIMARY KEY)
- name (TEXT) - Project name
- department (TEXT) - Owning department
- budget (REAL) - Project budget
- start_date (TEXT) - Start date (YYYY-MM-DD)
- status (TEXT) - Current status (Planning/In Progress/Completed)
`

const PromptSystem = `You are a SQL expert. Use this schema:
` + Schema + `

Return ONLY the SQL query without any explanation or markdown formatting.
Always use proper SQL syntax for SQLite.
For aggregations, always include meaningful column aliases.`

const PromptUser = "Generate SQL for: %s"
