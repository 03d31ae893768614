package usecase

import (
	"context"
	"strings"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	repo "taskpilot/internal/task/repository"
)

// QuickAdd parses raw text into a task, persists it and optionally mirrors
// it to Google Calendar. Parsing is deterministic: the same text and
// reference time always produce the same task.
func (uc *implUseCase) QuickAdd(ctx context.Context, input task.QuickAddInput) (task.QuickAddOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.QuickAddOutput{}, task.ErrEmptyInput
	}

	if err := uc.ensureListExists(ctx, input.ListID); err != nil {
		return task.QuickAddOutput{}, err
	}

	now := uc.nowOr(input.When)
	intent := uc.parser.Extract(input.RawText, now)

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ListID:      input.ListID,
		Title:       intent.Title,
		Description: intent.Description,
		DueDate:     intent.DueDate,
		Priority:    model.Priority(intent.Priority),
		Labels:      intent.Labels,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.QuickAdd CreateTask: %v", err)
		return task.QuickAddOutput{}, err
	}

	uc.l.Infof(ctx, "uc.QuickAdd: created task %s from %d chars of input", created.ID, len(input.RawText))

	// Mirror to the calendar only when the parser found a due date.
	calendarLink := uc.tryCreateCalendarEvent(ctx, created)

	return task.QuickAddOutput{
		Task:         created,
		Intent:       intent,
		CalendarLink: calendarLink,
	}, nil
}

// ParsePreview extracts structured fields from raw text without persisting
// anything. The UI merges the preview into its creation form.
func (uc *implUseCase) ParsePreview(ctx context.Context, input task.ParsePreviewInput) (task.ParsePreviewOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.ParsePreviewOutput{}, task.ErrEmptyInput
	}

	now := uc.nowOr(input.When)
	return task.ParsePreviewOutput{
		Intent: uc.parser.Extract(input.RawText, now),
	}, nil
}
