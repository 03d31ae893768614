package usecase

import (
	"context"

	"taskpilot/internal/list"
)

// List returns every list.
func (uc *implUseCase) List(ctx context.Context) (list.ListListsOutput, error) {
	lists, err := uc.repo.ListLists(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListLists: %v", err)
		return list.ListListsOutput{}, err
	}

	return list.ListListsOutput{
		Lists: lists,
		Total: len(lists),
	}, nil
}
