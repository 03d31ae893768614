package sqlite

import (
	"fmt"
	"strings"

	repo "taskpilot/internal/task/repository"
)

// buildListFilters builds the WHERE conditions + args for ListTasks.
// All set fields are applied as AND conditions.
func (r *implRepository) buildListFilters(opt repo.ListTasksOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ListID != "" {
		conditions = append(conditions, "list_id = ?")
		args = append(args, opt.ListID)
	}
	if opt.Completed != nil {
		conditions = append(conditions, "completed = ?")
		args = append(args, *opt.Completed)
	}
	if opt.Priority != "" {
		conditions = append(conditions, "priority = ?")
		args = append(args, opt.Priority)
	}
	if opt.Label != "" {
		// Labels are a JSON array of strings, so an exact element match
		// is a quoted substring match.
		conditions = append(conditions, "labels LIKE ?")
		args = append(args, `%"`+opt.Label+`"%`)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListClause builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListTasks.
func (r *implRepository) buildListClause(opt repo.ListTasksOptions) (string, []any) {
	var parts []string

	conditions, args := r.buildListFilters(opt)
	parts = append(parts, "WHERE "+conditions)

	// Sorting: soonest due first, undated tasks last, then newest first.
	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "due_date IS NULL, due_date ASC, created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	// Pagination. SQLite requires a LIMIT before OFFSET, -1 means unbounded.
	if opt.Limit > 0 {
		parts = append(parts, "LIMIT ?")
		args = append(args, opt.Limit)
	} else if opt.Offset > 0 {
		parts = append(parts, "LIMIT -1")
	}
	if opt.Offset > 0 {
		parts = append(parts, "OFFSET ?")
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
