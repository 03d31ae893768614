package usecase

import (
	"context"
	"sort"
	"strings"

	"taskpilot/internal/task"
	repo "taskpilot/internal/task/repository"
	"taskpilot/pkg/fuzzy"
)

const defaultSearchLimit = 10

// Search performs fuzzy search on task titles and descriptions. A title
// hit outranks a description-only hit with the same score.
func (uc *implUseCase) Search(ctx context.Context, input task.SearchInput) (task.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return task.SearchOutput{}, task.ErrEmptyQuery
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	// The whole store is scored client-side, a personal task base is small.
	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Search ListTasks: %v", err)
		return task.SearchOutput{}, err
	}

	var results []task.SearchResultItem
	for _, t := range tasks {
		score, ok := uc.scoreTask(query, t.Title, t.Description)
		if !ok {
			continue
		}
		results = append(results, task.SearchResultItem{Task: t, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	return task.SearchOutput{
		Results: results,
		Count:   len(results),
	}, nil
}

// scoreTask scores a task against the query. Description matches are
// discounted so title matches rank first.
func (uc *implUseCase) scoreTask(query, title, description string) (int, bool) {
	const descriptionPenalty = 25

	titleScore, titleOK := fuzzy.Score(query, title)
	descScore, descOK := fuzzy.Score(query, description)
	if descOK {
		descScore -= descriptionPenalty
	}

	switch {
	case titleOK && descOK:
		if descScore > titleScore {
			return descScore, true
		}
		return titleScore, true
	case titleOK:
		return titleScore, true
	case descOK:
		return descScore, true
	}
	return 0, false
}
