package repository

import (
	"context"
	"time"

	"taskpilot/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)

	// SaveTask writes the full task row, including nested subtasks,
	// labels and attachments. UpdatedAt is refreshed by the store.
	SaveTask(ctx context.Context, t model.Task) (model.Task, error)

	DeleteTask(ctx context.Context, id string) error

	// ListScheduledBetween returns incomplete tasks whose due date falls
	// in [from, to), ordered by due date ascending. This feeds the
	// planner's commitment window.
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]model.Task, error)
}
