package list

import "taskpilot/internal/model"

// --- UseCase Inputs ---

type CreateListInput struct {
	Name  string
	Color string
	Icon  string
}

type UpdateListInput struct {
	ID    string
	Name  string
	Color string
	Icon  string
}

// --- UseCase Outputs ---

type CreateListOutput struct {
	List model.List
}

type ListListsOutput struct {
	Lists []model.List
	Total int
}

type DetailListOutput struct {
	List model.List
}

type UpdateListOutput struct {
	List model.List
}
