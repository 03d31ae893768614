package sqlite

import (
	"database/sql"
	"fmt"

	"taskpilot/internal/task/repository"
	"taskpilot/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed Repository for the task domain and runs
// its schema migration.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	r := &implRepository{db: db, l: l}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("task/repository/sqlite: migrate: %w", err)
	}
	return r, nil
}

// migrate creates the tasks table. Labels, subtasks and attachments are
// stored as JSON text columns. Deleting a list deletes its tasks.
func (r *implRepository) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			list_id TEXT REFERENCES lists(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			due_date DATETIME,
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			priority TEXT NOT NULL DEFAULT 'medium',
			labels TEXT NOT NULL DEFAULT '[]',
			subtasks TEXT NOT NULL DEFAULT '[]',
			attachments TEXT NOT NULL DEFAULT '[]',
			reminder_at DATETIME,
			completed INTEGER NOT NULL DEFAULT 0,
			completed_at DATETIME,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_tasks_list ON tasks(list_id);
		CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date);
		CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed);
	`
	_, err := r.db.Exec(schema)
	return err
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
