package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
)

// AddAttachment links a file or URL to a task.
func (uc *implUseCase) AddAttachment(ctx context.Context, input task.AddAttachmentInput) (task.AddAttachmentOutput, error) {
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return task.AddAttachmentOutput{}, task.ErrEmptyInput
	}

	existing, err := uc.getTask(ctx, input.TaskID)
	if err != nil {
		return task.AddAttachmentOutput{}, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = url
	}

	existing.Attachments = append(existing.Attachments, model.Attachment{
		ID:        uuid.NewString(),
		Name:      name,
		URL:       url,
		CreatedAt: time.Now(),
	})

	saved, err := uc.repo.SaveTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddAttachment SaveTask: %v", err)
		return task.AddAttachmentOutput{}, err
	}
	return task.AddAttachmentOutput{Task: saved}, nil
}

// DeleteAttachment removes an attachment by ID.
func (uc *implUseCase) DeleteAttachment(ctx context.Context, input task.DeleteAttachmentInput) (task.DeleteAttachmentOutput, error) {
	existing, err := uc.getTask(ctx, input.TaskID)
	if err != nil {
		return task.DeleteAttachmentOutput{}, err
	}

	kept := existing.Attachments[:0]
	found := false
	for _, a := range existing.Attachments {
		if a.ID == input.AttachmentID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return task.DeleteAttachmentOutput{}, task.ErrAttachmentNotFound
	}
	existing.Attachments = kept

	saved, err := uc.repo.SaveTask(ctx, existing)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteAttachment SaveTask: %v", err)
		return task.DeleteAttachmentOutput{}, err
	}
	return task.DeleteAttachmentOutput{Task: saved}, nil
}
