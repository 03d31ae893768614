package usecase

import (
	"context"
	"strings"

	"taskpilot/internal/list"
	repo "taskpilot/internal/list/repository"
)

// Detail retrieves a single List by ID. Returns ErrListNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (list.DetailListOutput, error) {
	found, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneList: %v", err)
		return list.DetailListOutput{}, err
	}
	if found.ID == "" {
		return list.DetailListOutput{}, list.ErrListNotFound
	}
	return list.DetailListOutput{List: found}, nil
}

// Update modifies an existing List. Returns ErrListNotFound when not found
// and ErrDuplicateName when renaming to a name another list already uses.
func (uc *implUseCase) Update(ctx context.Context, input list.UpdateListInput) (list.UpdateListOutput, error) {
	existing, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneList: %v", err)
		return list.UpdateListOutput{}, err
	}
	if existing.ID == "" {
		return list.UpdateListOutput{}, list.ErrListNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name != "" && !strings.EqualFold(name, existing.Name) {
		other, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{Name: name})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneList name: %v", err)
			return list.UpdateListOutput{}, err
		}
		if other.ID != "" {
			return list.UpdateListOutput{}, list.ErrDuplicateName
		}
	}

	updated, err := uc.repo.UpdateList(ctx, repo.UpdateListOptions{
		ID:    input.ID,
		Name:  uc.coalesce(name, existing.Name),
		Color: uc.coalesce(input.Color, existing.Color),
		Icon:  uc.coalesce(input.Icon, existing.Icon),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateList: %v", err)
		return list.UpdateListOutput{}, err
	}
	return list.UpdateListOutput{List: updated}, nil
}

// Delete removes a List by ID. Returns ErrListNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneList(ctx, repo.GetOneListOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneList: %v", err)
		return err
	}
	if existing.ID == "" {
		return list.ErrListNotFound
	}
	if err := uc.repo.DeleteList(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteList: %v", err)
		return err
	}
	return nil
}
