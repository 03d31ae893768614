package usecase_test

import (
	"context"
	"errors"
	"testing"

	"taskpilot/internal/list"
	"taskpilot/internal/list/repository"
	"taskpilot/internal/list/usecase"
	"taskpilot/internal/model"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockListRepo struct {
	getOneFunc func(opt repository.GetOneListOptions) (model.List, error)
	createFunc func(opt repository.CreateListOptions) (model.List, error)
	listFunc   func() ([]model.List, error)
	updateFunc func(opt repository.UpdateListOptions) (model.List, error)
	deleteFunc func(id string) error
}

func (m *mockListRepo) CreateList(ctx context.Context, opt repository.CreateListOptions) (model.List, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.List{ID: "list-1", Name: opt.Name, Color: opt.Color, Icon: opt.Icon}, nil
}

func (m *mockListRepo) GetOneList(ctx context.Context, opt repository.GetOneListOptions) (model.List, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.List{}, nil
}

func (m *mockListRepo) ListLists(ctx context.Context) ([]model.List, error) {
	if m.listFunc != nil {
		return m.listFunc()
	}
	return nil, nil
}

func (m *mockListRepo) UpdateList(ctx context.Context, opt repository.UpdateListOptions) (model.List, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	return model.List{ID: opt.ID, Name: opt.Name, Color: opt.Color, Icon: opt.Icon}, nil
}

func (m *mockListRepo) DeleteList(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func TestCreate(t *testing.T) {
	t.Run("Empty Name Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockListRepo{})
		_, err := uc.Create(context.Background(), list.CreateListInput{Name: "   "})
		if !errors.Is(err, list.ErrEmptyName) {
			t.Errorf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("Duplicate Name Error", func(t *testing.T) {
		repoMock := &mockListRepo{
			getOneFunc: func(opt repository.GetOneListOptions) (model.List, error) {
				return model.List{ID: "existing", Name: "Work"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock)
		_, err := uc.Create(context.Background(), list.CreateListInput{Name: "work"})
		if !errors.Is(err, list.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Success Trims Name", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockListRepo{})
		out, err := uc.Create(context.Background(), list.CreateListInput{Name: "  Work  ", Color: "#ff0000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.List.Name != "Work" {
			t.Errorf("expected trimmed name 'Work', got %q", out.List.Name)
		}
		if out.List.Color != "#ff0000" {
			t.Errorf("expected color to pass through, got %q", out.List.Color)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		repoMock := &mockListRepo{
			createFunc: func(opt repository.CreateListOptions) (model.List, error) {
				return model.List{}, repository.ErrFailedToInsert
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock)
		_, err := uc.Create(context.Background(), list.CreateListInput{Name: "Work"})
		if !errors.Is(err, repository.ErrFailedToInsert) {
			t.Errorf("expected ErrFailedToInsert, got %v", err)
		}
	})
}

func TestList(t *testing.T) {
	t.Run("Returns All With Total", func(t *testing.T) {
		repoMock := &mockListRepo{
			listFunc: func() ([]model.List, error) {
				return []model.List{{ID: "a"}, {ID: "b"}}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock)
		out, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 2 || len(out.Lists) != 2 {
			t.Errorf("expected 2 lists, got total=%d len=%d", out.Total, len(out.Lists))
		}
	})
}

func TestDetail(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockListRepo{})
		_, err := uc.Detail(context.Background(), "missing")
		if !errors.Is(err, list.ErrListNotFound) {
			t.Errorf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		repoMock := &mockListRepo{
			getOneFunc: func(opt repository.GetOneListOptions) (model.List, error) {
				return model.List{ID: opt.ID, Name: "Work"}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock)
		out, err := uc.Detail(context.Background(), "list-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.List.ID != "list-1" {
			t.Errorf("expected list-1, got %q", out.List.ID)
		}
	})
}

func TestUpdate(t *testing.T) {
	existing := model.List{ID: "list-1", Name: "Work", Color: "#ff0000", Icon: "briefcase"}

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockListRepo{})
		_, err := uc.Update(context.Background(), list.UpdateListInput{ID: "missing", Name: "X"})
		if !errors.Is(err, list.ErrListNotFound) {
			t.Errorf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("Rename To Taken Name Error", func(t *testing.T) {
		repoMock := &mockListRepo{
			getOneFunc: func(opt repository.GetOneListOptions) (model.List, error) {
				if opt.ID != "" {
					return existing, nil
				}
				return model.List{ID: "other", Name: opt.Name}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock)
		_, err := uc.Update(context.Background(), list.UpdateListInput{ID: "list-1", Name: "Personal"})
		if !errors.Is(err, list.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Partial Update Keeps Existing Fields", func(t *testing.T) {
		var got repository.UpdateListOptions
		repoMock := &mockListRepo{
			getOneFunc: func(opt repository.GetOneListOptions) (model.List, error) {
				if opt.ID != "" {
					return existing, nil
				}
				return model.List{}, nil
			},
			updateFunc: func(opt repository.UpdateListOptions) (model.List, error) {
				got = opt
				return model.List{ID: opt.ID, Name: opt.Name, Color: opt.Color, Icon: opt.Icon}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock)
		_, err := uc.Update(context.Background(), list.UpdateListInput{ID: "list-1", Color: "#00ff00"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Work" {
			t.Errorf("expected name kept as 'Work', got %q", got.Name)
		}
		if got.Color != "#00ff00" {
			t.Errorf("expected color replaced, got %q", got.Color)
		}
		if got.Icon != "briefcase" {
			t.Errorf("expected icon kept, got %q", got.Icon)
		}
	})

	t.Run("Case Only Rename Skips Duplicate Check", func(t *testing.T) {
		repoMock := &mockListRepo{
			getOneFunc: func(opt repository.GetOneListOptions) (model.List, error) {
				if opt.ID != "" {
					return existing, nil
				}
				t.Errorf("did not expect a name lookup for a case-only rename")
				return model.List{}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock)
		out, err := uc.Update(context.Background(), list.UpdateListInput{ID: "list-1", Name: "WORK"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.List.Name != "WORK" {
			t.Errorf("expected renamed to 'WORK', got %q", out.List.Name)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockListRepo{})
		err := uc.Delete(context.Background(), "missing")
		if !errors.Is(err, list.ErrListNotFound) {
			t.Errorf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("Success", func(t *testing.T) {
		var deleted string
		repoMock := &mockListRepo{
			getOneFunc: func(opt repository.GetOneListOptions) (model.List, error) {
				return model.List{ID: opt.ID}, nil
			},
			deleteFunc: func(id string) error {
				deleted = id
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock)
		if err := uc.Delete(context.Background(), "list-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deleted != "list-1" {
			t.Errorf("expected delete of list-1, got %q", deleted)
		}
	})
}
