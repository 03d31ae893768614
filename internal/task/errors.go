package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrListNotFound       = errors.New("list not found")
	ErrSubtaskNotFound    = errors.New("subtask not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrEmptyInput         = errors.New("input text is empty")
	ErrEmptyTitle         = errors.New("task title is required")
	ErrEmptyQuery         = errors.New("search query is empty")
	ErrInvalidPriority    = errors.New("invalid priority")
)
