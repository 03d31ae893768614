package usecase

import (
	"context"
	"strings"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	repo "taskpilot/internal/task/repository"
)

// Create creates a new Task after validating its title, priority and list.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}

	priority := model.PriorityMedium
	if input.Priority != "" {
		priority = model.Priority(input.Priority)
		if !priority.Valid() {
			return task.CreateTaskOutput{}, task.ErrInvalidPriority
		}
	}

	if err := uc.ensureListExists(ctx, input.ListID); err != nil {
		return task.CreateTaskOutput{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ListID:          input.ListID,
		Title:           title,
		Description:     input.Description,
		DueDate:         input.DueDate,
		DurationMinutes: input.DurationMinutes,
		Priority:        priority,
		Labels:          input.Labels,
		ReminderAt:      input.ReminderAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}
