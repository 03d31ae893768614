package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error
	Complete(ctx context.Context, input CompleteTaskInput) (CompleteTaskOutput, error)

	// QuickAdd parses raw text into a task, persists it and optionally
	// mirrors it to Google Calendar.
	QuickAdd(ctx context.Context, input QuickAddInput) (QuickAddOutput, error)

	// ParsePreview extracts structured fields from raw text without
	// persisting anything.
	ParsePreview(ctx context.Context, input ParsePreviewInput) (ParsePreviewOutput, error)

	// Scheduling over the stored tasks
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)
	CheckConflict(ctx context.Context, input CheckConflictInput) (CheckConflictOutput, error)
	NextAvailable(ctx context.Context, input NextAvailableInput) (NextAvailableOutput, error)

	// Search performs fuzzy search on task titles and descriptions.
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)

	// Subtasks and attachments
	AddSubtask(ctx context.Context, input AddSubtaskInput) (AddSubtaskOutput, error)
	ToggleSubtask(ctx context.Context, input ToggleSubtaskInput) (ToggleSubtaskOutput, error)
	AddAttachment(ctx context.Context, input AddAttachmentInput) (AddAttachmentOutput, error)
	DeleteAttachment(ctx context.Context, input DeleteAttachmentInput) (DeleteAttachmentOutput, error)
}
