package usecase

import (
	"context"
	"strings"

	"taskpilot/internal/list"
	repo "taskpilot/internal/list/repository"
)

// Create creates a new List after checking for name uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input list.CreateListInput) (list.CreateListOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return list.CreateListOutput{}, list.ErrEmptyName
	}

	existing, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneList: %v", err)
		return list.CreateListOutput{}, err
	}
	if existing.ID != "" {
		return list.CreateListOutput{}, list.ErrDuplicateName
	}

	created, err := uc.repo.CreateList(ctx, repo.CreateListOptions{
		Name:  name,
		Color: input.Color,
		Icon:  input.Icon,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateList: %v", err)
		return list.CreateListOutput{}, err
	}

	return list.CreateListOutput{List: created}, nil
}
