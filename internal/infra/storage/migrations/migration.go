package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"
)

// Migration is one versioned schema change
type Migration struct {
	// Version orders migrations lexically ("001", "002", ...)
	Version     string
	Description string
	UpSQL       string
}

// Runner applies migrations to a database of a given dialect
type Runner struct {
	db      *sql.DB
	dialect string
}

// NewRunner creates a migration runner for the "sqlite" or "postgres" dialect
func NewRunner(db *sql.DB, dialect string) *Runner {
	return &Runner{db: db, dialect: dialect}
}

// For returns the migrations for the runner's dialect
func (r *Runner) For() ([]Migration, error) {
	switch r.dialect {
	case "sqlite":
		return SQLiteMigrations(), nil
	case "postgres":
		return PostgresMigrations(), nil
	default:
		return nil, fmt.Errorf("unsupported dialect: %s", r.dialect)
	}
}

func (r *Runner) ensureTable(ctx context.Context) error {
	var createSQL string

	switch r.dialect {
	case "sqlite":
		createSQL = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at DATETIME NOT NULL
		);`
	case "postgres":
		createSQL = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) PRIMARY KEY,
			description TEXT NOT NULL,
			applied_at TIMESTAMP WITH TIME ZONE NOT NULL
		);`
	default:
		return fmt.Errorf("unsupported dialect: %s", r.dialect)
	}

	if _, err := r.db.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create migration table: %w", err)
	}
	return nil
}

// Applied returns the set of applied migration versions
func (r *Runner) Applied(ctx context.Context) (map[string]bool, error) {
	if err := r.ensureTable(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}

func (r *Runner) apply(ctx context.Context, m Migration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.UpSQL); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", m.Version, err)
	}

	recordSQL := "INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)"
	if r.dialect == "postgres" {
		recordSQL = "INSERT INTO schema_migrations (version, description, applied_at) VALUES ($1, $2, $3)"
	}

	if _, err := tx.ExecContext(ctx, recordSQL, m.Version, m.Description, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record migration %s: %w", m.Version, err)
	}

	return tx.Commit()
}

// Up applies every pending migration for the dialect and returns how many ran
func (r *Runner) Up(ctx context.Context) (int, error) {
	all, err := r.For()
	if err != nil {
		return 0, err
	}

	applied, err := r.Applied(ctx)
	if err != nil {
		return 0, err
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Version < all[j].Version })

	count := 0
	for _, m := range all {
		if applied[m.Version] {
			continue
		}
		if err := r.apply(ctx, m); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}
