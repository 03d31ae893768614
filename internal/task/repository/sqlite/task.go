package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"taskpilot/internal/model"
	repo "taskpilot/internal/task/repository"
)

const taskColumns = `id, list_id, title, description, due_date, duration_minutes, priority, labels, subtasks, attachments, reminder_at, completed, completed_at, created_at, updated_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := time.Now()
	t := model.Task{
		ID:              uuid.NewString(),
		ListID:          opt.ListID,
		Title:           opt.Title,
		Description:     opt.Description,
		DueDate:         opt.DueDate,
		DurationMinutes: opt.DurationMinutes,
		Priority:        opt.Priority,
		Labels:          opt.Labels,
		ReminderAt:      opt.ReminderAt,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	labels, subtasks, attachments, err := r.jsonColumns(t)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	query := fmt.Sprintf(`INSERT INTO tasks (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, taskColumns)

	_, err = r.db.ExecContext(ctx, query,
		t.ID, nullString(t.ListID), t.Title, t.Description, t.DueDate, t.DurationMinutes,
		string(t.Priority), labels, subtasks, attachments, t.ReminderAt,
		t.Completed, t.CompletedAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters.
// Returns a zero-value Task (ID == "") when no row matches, with nil error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? LIMIT 1`, taskColumns)

	t, err := r.scanTask(r.db.QueryRowContext(ctx, query, opt.ID))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a paginated list of Tasks and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	// 1. Count total (without pagination)
	filters, filterArgs := r.buildListFilters(opt)
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", filters)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, filterArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	clause, args := r.buildListClause(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks %s`, taskColumns, clause)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// SaveTask writes the full task row and returns the saved entity with a
// refreshed UpdatedAt.
func (r *implRepository) SaveTask(ctx context.Context, t model.Task) (model.Task, error) {
	t.UpdatedAt = time.Now()

	labels, subtasks, attachments, err := r.jsonColumns(t)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("SaveTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	const query = `
		UPDATE tasks
		SET list_id = ?, title = ?, description = ?, due_date = ?, duration_minutes = ?,
			priority = ?, labels = ?, subtasks = ?, attachments = ?, reminder_at = ?,
			completed = ?, completed_at = ?, updated_at = ?
		WHERE id = ?`

	_, err = r.db.ExecContext(ctx, query,
		nullString(t.ListID), t.Title, t.Description, t.DueDate, t.DurationMinutes,
		string(t.Priority), labels, subtasks, attachments, t.ReminderAt,
		t.Completed, t.CompletedAt, t.UpdatedAt, t.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task by ID.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ListScheduledBetween returns incomplete tasks due in [from, to) ordered
// by due date ascending.
func (r *implRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM tasks
		WHERE due_date IS NOT NULL AND due_date >= ? AND due_date < ? AND completed = 0
		ORDER BY due_date ASC`, taskColumns)

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListScheduledBetween"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListScheduledBetween"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListScheduledBetween"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// --- scanning helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row, decoding the JSON columns and NULLable fields.
func (r *implRepository) scanTask(row rowScanner) (model.Task, error) {
	var (
		t           model.Task
		listID      sql.NullString
		dueDate     sql.NullTime
		reminderAt  sql.NullTime
		completedAt sql.NullTime
		labels      []byte
		subtasks    []byte
		attachments []byte
	)

	err := row.Scan(
		&t.ID, &listID, &t.Title, &t.Description, &dueDate, &t.DurationMinutes, &t.Priority,
		&labels, &subtasks, &attachments, &reminderAt, &t.Completed, &completedAt,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.ListID = listID.String
	if dueDate.Valid {
		d := dueDate.Time
		t.DueDate = &d
	}
	if reminderAt.Valid {
		d := reminderAt.Time
		t.ReminderAt = &d
	}
	if completedAt.Valid {
		d := completedAt.Time
		t.CompletedAt = &d
	}

	if len(labels) > 0 {
		if err := json.Unmarshal(labels, &t.Labels); err != nil {
			return model.Task{}, err
		}
	}
	if len(subtasks) > 0 {
		if err := json.Unmarshal(subtasks, &t.Subtasks); err != nil {
			return model.Task{}, err
		}
	}
	if len(attachments) > 0 {
		if err := json.Unmarshal(attachments, &t.Attachments); err != nil {
			return model.Task{}, err
		}
	}
	return t, nil
}

// jsonColumns marshals the task's nested slices, normalizing nil to [].
func (r *implRepository) jsonColumns(t model.Task) (labels, subtasks, attachments []byte, err error) {
	labels, err = marshalSlice(t.Labels)
	if err != nil {
		return nil, nil, nil, err
	}
	subtasks, err = marshalSlice(t.Subtasks)
	if err != nil {
		return nil, nil, nil, err
	}
	attachments, err = marshalSlice(t.Attachments)
	if err != nil {
		return nil, nil, nil, err
	}
	return labels, subtasks, attachments, nil
}

func marshalSlice[T any](v []T) ([]byte, error) {
	if v == nil {
		v = []T{}
	}
	return json.Marshal(v)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
