package http

import (
	"errors"

	"taskpilot/internal/task"
	pkgErrors "taskpilot/pkg/errors"
)

var (
	errMissingID         = errors.New("id is required")
	errMissingAttachment = errors.New("attachmentId is required")
	errBlankTitle        = errors.New("title must not be blank")
	errBlankText         = errors.New("text must not be blank")
	errBlankQuery        = errors.New("q must not be blank")
	errBlankURL          = errors.New("url must not be blank")
	errMissingSubtaskRef = errors.New("subtask_id or match is required")
	errMissingStart      = errors.New("start is required")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case task.ErrTaskNotFound:
		return pkgErrors.NewHTTPError(404, "task not found")
	case task.ErrListNotFound:
		return pkgErrors.NewHTTPError(404, "list not found")
	case task.ErrSubtaskNotFound:
		return pkgErrors.NewHTTPError(404, "no matching subtask")
	case task.ErrAttachmentNotFound:
		return pkgErrors.NewHTTPError(404, "attachment not found")
	case task.ErrEmptyInput:
		return pkgErrors.NewHTTPError(400, "text is required")
	case task.ErrEmptyTitle:
		return pkgErrors.NewHTTPError(400, "title is required")
	case task.ErrEmptyQuery:
		return pkgErrors.NewHTTPError(400, "search query is required")
	case task.ErrInvalidPriority:
		return pkgErrors.NewHTTPError(400, "priority must be one of low, medium, high, urgent")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
