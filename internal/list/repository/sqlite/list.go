package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	repo "taskpilot/internal/list/repository"
	"taskpilot/internal/model"
)

// CreateList inserts a new List row and returns the created entity.
func (r *implRepository) CreateList(ctx context.Context, opt repo.CreateListOptions) (model.List, error) {
	now := time.Now()
	list := model.List{
		ID:        uuid.NewString(),
		Name:      opt.Name,
		Color:     opt.Color,
		Icon:      opt.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const query = `
		INSERT INTO lists (id, name, color, icon, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		list.ID, list.Name, list.Color, list.Icon, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateList"), err)
		return model.List{}, repo.ErrFailedToInsert
	}
	return list, nil
}

// GetOneList retrieves a single List by the provided filters (AND condition).
// Returns a zero-value List (ID == "") when no row matches, with nil error.
func (r *implRepository) GetOneList(ctx context.Context, opt repo.GetOneListOptions) (model.List, error) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.Name != "" {
		conditions = append(conditions, "name = ? COLLATE NOCASE")
		args = append(args, opt.Name)
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "1=1")
	}

	query := fmt.Sprintf(
		`SELECT id, name, color, icon, created_at, updated_at FROM lists WHERE %s LIMIT 1`,
		strings.Join(conditions, " AND "),
	)

	var list model.List
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&list.ID, &list.Name, &list.Color, &list.Icon, &list.CreatedAt, &list.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.List{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneList"), err)
		return model.List{}, repo.ErrFailedToGet
	}
	return list, nil
}

// ListLists returns every List ordered by creation time.
func (r *implRepository) ListLists(ctx context.Context) ([]model.List, error) {
	const query = `
		SELECT id, name, color, icon, created_at, updated_at
		FROM lists
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var lists []model.List
	for rows.Next() {
		var list model.List
		if err := rows.Scan(&list.ID, &list.Name, &list.Color, &list.Icon, &list.CreatedAt, &list.UpdatedAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListLists"), err)
			return nil, repo.ErrFailedToList
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListLists"), err)
		return nil, repo.ErrFailedToList
	}
	return lists, nil
}

// UpdateList updates a List by ID and returns the updated entity.
func (r *implRepository) UpdateList(ctx context.Context, opt repo.UpdateListOptions) (model.List, error) {
	const query = `
		UPDATE lists
		SET name = ?, color = ?, icon = ?, updated_at = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, opt.Name, opt.Color, opt.Icon, time.Now(), opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateList"), err)
		return model.List{}, repo.ErrFailedToUpdate
	}

	return r.GetOneList(ctx, repo.GetOneListOptions{ID: opt.ID})
}

// DeleteList removes a List by ID. Tasks referencing the list are deleted
// by the tasks table's ON DELETE CASCADE foreign key.
func (r *implRepository) DeleteList(ctx context.Context, id string) error {
	const query = `DELETE FROM lists WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteList"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
