package list

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// List CRUD
	Create(ctx context.Context, input CreateListInput) (CreateListOutput, error)
	List(ctx context.Context) (ListListsOutput, error)
	Detail(ctx context.Context, id string) (DetailListOutput, error)
	Update(ctx context.Context, input UpdateListInput) (UpdateListOutput, error)
	Delete(ctx context.Context, id string) error
}
