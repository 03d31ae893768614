package list

import "errors"

var (
	ErrListNotFound  = errors.New("list not found")
	ErrDuplicateName = errors.New("list name already exists")
	ErrEmptyName     = errors.New("list name is required")
)
