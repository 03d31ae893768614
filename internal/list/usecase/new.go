package usecase

import (
	"taskpilot/internal/list/repository"
	"taskpilot/pkg/log"
)

// implUseCase is the private implementation of list.UseCase.
type implUseCase struct {
	l    log.Logger
	repo repository.Repository
}

// New creates a new list UseCase implementation.
func New(l log.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
