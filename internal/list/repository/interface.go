package repository

import (
	"context"

	"taskpilot/internal/model"
)

// Repository is the composed interface for the list domain data store.
type Repository interface {
	ListRepository
}

// ListRepository defines all data access methods for the List entity.
type ListRepository interface {
	CreateList(ctx context.Context, opt CreateListOptions) (model.List, error)
	GetOneList(ctx context.Context, opt GetOneListOptions) (model.List, error)
	ListLists(ctx context.Context) ([]model.List, error)
	UpdateList(ctx context.Context, opt UpdateListOptions) (model.List, error)
	DeleteList(ctx context.Context, id string) error
}
