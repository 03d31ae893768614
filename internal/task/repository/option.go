package repository

import (
	"time"

	"taskpilot/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ListID          string // empty means the inbox (no list)
	Title           string
	Description     string
	DueDate         *time.Time
	DurationMinutes int
	Priority        model.Priority
	Labels          []string
	ReminderAt      *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
type ListTasksOptions struct {
	ListID    string
	Completed *bool  // nil means both
	Label     string // match a single label
	Priority  string
	Limit     int // 0 means no limit
	Offset    int
	OrderBy   string
}
