package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
)

// AddSubtask appends a checklist item to a task.
func (uc *implUseCase) AddSubtask(ctx context.Context, input task.AddSubtaskInput) (task.AddSubtaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.AddSubtaskOutput{}, task.ErrEmptyTitle
	}

	existing, err := uc.getTask(ctx, input.TaskID)
	if err != nil {
		return task.AddSubtaskOutput{}, err
	}

	existing.Subtasks = append(existing.Subtasks, model.Subtask{
		ID:    uuid.NewString(),
		Title: title,
	})

	saved, err := uc.repo.SaveTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddSubtask SaveTask: %v", err)
		return task.AddSubtaskOutput{}, err
	}
	return task.AddSubtaskOutput{Task: saved}, nil
}

// ToggleSubtask sets subtask done states. An exact SubtaskID flips one
// item; a Match toggles every subtask whose title contains the text,
// case-insensitively.
func (uc *implUseCase) ToggleSubtask(ctx context.Context, input task.ToggleSubtaskInput) (task.ToggleSubtaskOutput, error) {
	existing, err := uc.getTask(ctx, input.TaskID)
	if err != nil {
		return task.ToggleSubtaskOutput{}, err
	}

	count := 0
	switch {
	case input.SubtaskID != "":
		for i := range existing.Subtasks {
			if existing.Subtasks[i].ID == input.SubtaskID {
				existing.Subtasks[i].Done = input.Done
				count++
				break
			}
		}
	case input.Match != "":
		match := strings.ToLower(strings.TrimSpace(input.Match))
		for i := range existing.Subtasks {
			if strings.Contains(strings.ToLower(existing.Subtasks[i].Title), match) {
				existing.Subtasks[i].Done = input.Done
				count++
			}
		}
	}

	if count == 0 {
		return task.ToggleSubtaskOutput{}, task.ErrSubtaskNotFound
	}

	saved, err := uc.repo.SaveTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleSubtask SaveTask: %v", err)
		return task.ToggleSubtaskOutput{}, err
	}

	return task.ToggleSubtaskOutput{
		Task:     saved,
		Updated:  true,
		Count:    count,
		Progress: saved.Progress(),
	}, nil
}
