// Package seed creates the reference databases and the handbook document.
package seed

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"multi-agent-assistant/pkg/datemath"
	"multi-agent-assistant/pkg/sqlitedb"
)

//go:embed assets/company.sql
var companySchema string

//go:embed assets/events.sql
var eventsSchema string

//go:embed assets/employee_handbook.txt
var handbook string

// Options says where to write each artifact. Empty paths are skipped.
type Options struct {
	CompanyPath  string
	EventsPath   string
	HandbookPath string
	Today        time.Time // first day of the events calendar
}

// Summary reports how many rows were written.
type Summary struct {
	Departments int
	Employees   int
	Projects    int
	Events      int
}

// Handbook returns the embedded employee handbook text.
func Handbook() string {
	return handbook
}

// All seeds every artifact named in opt.
func All(ctx context.Context, opt Options) (Summary, error) {
	var s Summary
	if opt.CompanyPath != "" {
		if err := Company(ctx, opt.CompanyPath); err != nil {
			return s, err
		}
		s.Departments, s.Employees, s.Projects = len(departments), len(employees), len(projects)
	}
	if opt.EventsPath != "" {
		today := opt.Today
		if today.IsZero() {
			today = time.Now()
		}
		if err := Events(ctx, opt.EventsPath, today); err != nil {
			return s, err
		}
		s.Events = len(eventTemplates)
	}
	if opt.HandbookPath != "" {
		if err := WriteHandbook(opt.HandbookPath); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Company (re)creates the employees, departments and projects tables.
func Company(ctx context.Context, path string) error {
	return withDB(ctx, path, companySchema, func(tx *sql.Tx) error {
		for _, d := range departments {
			if _, err := tx.ExecContext(ctx, `INSERT INTO departments VALUES (?, ?, ?, ?)`,
				d.ID, d.Name, d.Budget, d.ManagerID); err != nil {
				return fmt.Errorf("insert department %d: %w", d.ID, err)
			}
		}
		for _, e := range employees {
			if _, err := tx.ExecContext(ctx, `INSERT INTO employees VALUES (?, ?, ?, ?, ?, ?)`,
				e.ID, e.Name, e.Department, e.Salary, e.HireDate, e.Email); err != nil {
				return fmt.Errorf("insert employee %d: %w", e.ID, err)
			}
		}
		for _, p := range projects {
			if _, err := tx.ExecContext(ctx, `INSERT INTO projects VALUES (?, ?, ?, ?, ?, ?)`,
				p.ID, p.Name, p.Department, p.Budget, p.StartDate, p.Status); err != nil {
				return fmt.Errorf("insert project %d: %w", p.ID, err)
			}
		}
		return nil
	})
}

// Events (re)creates the events table with a week of events starting at today.
func Events(ctx context.Context, path string, today time.Time) error {
	return withDB(ctx, path, eventsSchema, func(tx *sql.Tx) error {
		for _, tpl := range eventTemplates {
			e := tpl.event
			date := today.AddDate(0, 0, tpl.dayOffset).Format(datemath.DateLayout)
			if _, err := tx.ExecContext(ctx, `INSERT INTO events VALUES (?, ?, ?, ?, ?, ?, ?)`,
				e.ID, e.Name, string(e.Type), e.Description, e.Location, date, e.Time); err != nil {
				return fmt.Errorf("insert event %d: %w", e.ID, err)
			}
		}
		return nil
	})
}

// WriteHandbook writes the handbook document to path.
func WriteHandbook(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create handbook directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(handbook), 0o644); err != nil {
		return fmt.Errorf("write handbook: %w", err)
	}
	return nil
}

func withDB(ctx context.Context, path, schema string, fill func(tx *sql.Tx) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sqlitedb.OpenReadWrite(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlitedb.ExecScript(ctx, db, schema); err != nil {
		return fmt.Errorf("apply schema to %s: %w", path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fill(tx); err != nil {
		return err
	}
	return tx.Commit()
}
