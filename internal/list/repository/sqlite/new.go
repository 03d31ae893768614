package sqlite

import (
	"database/sql"
	"fmt"

	"taskpilot/internal/list/repository"
	"taskpilot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the list domain and runs
// its schema migration.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("list/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("list/repository/sqlite: migrate: %w", err)
	}
	return r, nil
}

// migrate creates the lists table. Names are unique case-insensitively.
func (r *implRepository) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS lists (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			icon TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_lists_name ON lists(name COLLATE NOCASE);
	`
	_, err := r.db.Exec(schema)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("list/repository/sqlite.%s", method)
}
