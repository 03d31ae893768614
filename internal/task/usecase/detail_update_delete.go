package usecase

import (
	"context"
	"strings"
	"time"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	found, err := uc.getTask(ctx, id)
	if err != nil {
		return task.DetailTaskOutput{}, err
	}
	return task.DetailTaskOutput{
		Task:     found,
		Progress: found.Progress(),
	}, nil
}

// Update applies a partial update to an existing Task.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return task.UpdateTaskOutput{}, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		existing.Title = title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.ListID != nil {
		if err := uc.ensureListExists(ctx, *input.ListID); err != nil {
			return task.UpdateTaskOutput{}, err
		}
		existing.ListID = *input.ListID
	}
	if input.Priority != "" {
		priority := model.Priority(input.Priority)
		if !priority.Valid() {
			return task.UpdateTaskOutput{}, task.ErrInvalidPriority
		}
		existing.Priority = priority
	}
	if input.DurationMinutes > 0 {
		existing.DurationMinutes = input.DurationMinutes
	}
	if input.Labels != nil {
		existing.Labels = input.Labels
	}
	switch {
	case input.ClearDueDate:
		existing.DueDate = nil
	case input.DueDate != nil:
		existing.DueDate = input.DueDate
	}
	switch {
	case input.ClearReminder:
		existing.ReminderAt = nil
	case input.ReminderAt != nil:
		existing.ReminderAt = input.ReminderAt
	}

	saved, err := uc.repo.SaveTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update SaveTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: saved}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getTask(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// Complete marks a Task done or reopens it. Completing stamps CompletedAt,
// reopening clears it.
func (uc *implUseCase) Complete(ctx context.Context, input task.CompleteTaskInput) (task.CompleteTaskOutput, error) {
	existing, err := uc.getTask(ctx, input.ID)
	if err != nil {
		return task.CompleteTaskOutput{}, err
	}

	if input.Completed && !existing.Completed {
		now := time.Now()
		existing.Completed = true
		existing.CompletedAt = &now
	}
	if !input.Completed && existing.Completed {
		existing.Completed = false
		existing.CompletedAt = nil
	}

	saved, err := uc.repo.SaveTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete SaveTask: %v", err)
		return task.CompleteTaskOutput{}, err
	}
	return task.CompleteTaskOutput{Task: saved}, nil
}
