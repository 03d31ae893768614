package usecase

import (
	"context"

	"taskpilot/internal/task"
	repo "taskpilot/internal/task/repository"
)

// List returns a paginated list of Tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		ListID:    input.ListID,
		Completed: input.Completed,
		Label:     input.Label,
		Priority:  input.Priority,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
