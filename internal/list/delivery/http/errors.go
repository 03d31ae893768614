package http

import (
	"errors"

	"taskpilot/internal/list"
	pkgErrors "taskpilot/pkg/errors"
)

var (
	errMissingID = errors.New("id is required")
	errBlankName = errors.New("name must not be blank")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case list.ErrListNotFound:
		return pkgErrors.NewHTTPError(404, "list not found")
	case list.ErrDuplicateName:
		return pkgErrors.NewHTTPError(409, "list name already exists")
	case list.ErrEmptyName:
		return pkgErrors.NewHTTPError(400, "list name is required")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
