package usecase_test

import (
	"context"
	"errors"
	"testing"

	"taskpilot/internal/model"
	"taskpilot/internal/task"
	"taskpilot/internal/task/repository"
	"taskpilot/internal/task/usecase"
)

func storedTask(id string) model.Task {
	due := at(14, 0)
	return model.Task{
		ID:              id,
		ListID:          "list-1",
		Title:           "Quarterly review",
		Description:     "collect numbers first",
		DueDate:         &due,
		DurationMinutes: 45,
		Priority:        model.PriorityHigh,
		Labels:          []string{"work"},
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Title Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.Create(ctx, task.CreateTaskInput{Title: "   "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("error got = %v, want %v", err, task.ErrEmptyTitle)
		}
	})

	t.Run("Invalid Priority Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.Create(ctx, task.CreateTaskInput{Title: "Ship it", Priority: "asap"})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("error got = %v, want %v", err, task.ErrInvalidPriority)
		}
	})

	t.Run("Unknown List Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.Create(ctx, task.CreateTaskInput{Title: "Ship it", ListID: "ghost"})
		if !errors.Is(err, task.ErrListNotFound) {
			t.Errorf("error got = %v, want %v", err, task.ErrListNotFound)
		}
	})

	t.Run("Defaults Priority To Medium", func(t *testing.T) {
		var gotOpt repository.CreateTaskOptions
		repoMock := &mockTaskRepo{
			createFunc: func(opt repository.CreateTaskOptions) (model.Task, error) {
				gotOpt = opt
				return model.Task{ID: "task-1", Title: opt.Title, Priority: opt.Priority}, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.Create(ctx, task.CreateTaskInput{Title: "  Ship release notes  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotOpt.Title != "Ship release notes" {
			t.Errorf("title got = %q, want it trimmed", gotOpt.Title)
		}
		if gotOpt.Priority != model.PriorityMedium {
			t.Errorf("priority got = %q, want %q", gotOpt.Priority, model.PriorityMedium)
		}
		if out.Task.ID == "" {
			t.Error("created task has no id")
		}
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes Filters Through", func(t *testing.T) {
		var gotOpt repository.ListTasksOptions
		repoMock := &mockTaskRepo{
			listFunc: func(opt repository.ListTasksOptions) ([]model.Task, int, error) {
				gotOpt = opt
				return []model.Task{storedTask("task-1")}, 7, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		done := false
		out, err := uc.List(ctx, task.ListTasksInput{
			ListID:    "list-1",
			Completed: &done,
			Label:     "work",
			Priority:  "high",
			Limit:     5,
			Offset:    10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotOpt.ListID != "list-1" || gotOpt.Label != "work" || gotOpt.Priority != "high" {
			t.Errorf("filters got = %+v", gotOpt)
		}
		if gotOpt.Completed == nil || *gotOpt.Completed {
			t.Errorf("completed filter got = %v, want false", gotOpt.Completed)
		}
		if gotOpt.Limit != 5 || gotOpt.Offset != 10 {
			t.Errorf("page got = limit %d offset %d", gotOpt.Limit, gotOpt.Offset)
		}
		if out.Total != 7 || len(out.Tasks) != 1 || out.Limit != 5 || out.Offset != 10 {
			t.Errorf("output got = %+v", out)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		wantErr := errors.New("db down")
		repoMock := &mockTaskRepo{
			listFunc: func(opt repository.ListTasksOptions) ([]model.Task, int, error) {
				return nil, 0, wantErr
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.List(ctx, task.ListTasksInput{})
		if !errors.Is(err, wantErr) {
			t.Errorf("error got = %v, want %v", err, wantErr)
		}
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.Detail(ctx, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("error got = %v, want %v", err, task.ErrTaskNotFound)
		}
	})

	t.Run("Returns Progress", func(t *testing.T) {
		repoMock := &mockTaskRepo{
			getOneFunc: func(opt repository.GetOneTaskOptions) (model.Task, error) {
				found := storedTask(opt.ID)
				found.Subtasks = []model.Subtask{
					{ID: "sub-1", Title: "Draft", Done: true},
					{ID: "sub-2", Title: "Review"},
				}
				return found, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.Detail(ctx, "task-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID != "task-1" {
			t.Errorf("task id got = %q", out.Task.ID)
		}
		if out.Progress.Total != 2 || out.Progress.Done != 1 || out.Progress.Percent != 50 {
			t.Errorf("progress got = %+v", out.Progress)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	found := func(opt repository.GetOneTaskOptions) (model.Task, error) {
		return storedTask(opt.ID), nil
	}

	t.Run("Not Found", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "missing", Title: "New"})
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("error got = %v, want %v", err, task.ErrTaskNotFound)
		}
	})

	t.Run("Partial Update Keeps Existing Fields", func(t *testing.T) {
		var gotSaved model.Task
		repoMock := &mockTaskRepo{
			getOneFunc: found,
			saveFunc: func(saved model.Task) (model.Task, error) {
				gotSaved = saved
				return saved, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "task-1", Title: "Annual review"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if gotSaved.Title != "Annual review" {
			t.Errorf("title got = %q", gotSaved.Title)
		}
		if gotSaved.Description != "collect numbers first" || gotSaved.Priority != model.PriorityHigh {
			t.Errorf("untouched fields changed: %+v", gotSaved)
		}
		if gotSaved.DueDate == nil || !gotSaved.DueDate.Equal(at(14, 0)) {
			t.Errorf("due date got = %v, want it kept", gotSaved.DueDate)
		}
	})

	t.Run("Clears Due Date", func(t *testing.T) {
		var gotSaved model.Task
		repoMock := &mockTaskRepo{
			getOneFunc: found,
			saveFunc: func(saved model.Task) (model.Task, error) {
				gotSaved = saved
				return saved, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "task-1", ClearDueDate: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotSaved.DueDate != nil {
			t.Errorf("due date got = %v, want nil", gotSaved.DueDate)
		}
	})

	t.Run("Description Pointer Overwrites", func(t *testing.T) {
		var gotSaved model.Task
		repoMock := &mockTaskRepo{
			getOneFunc: found,
			saveFunc: func(saved model.Task) (model.Task, error) {
				gotSaved = saved
				return saved, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		empty := ""
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "task-1", Description: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotSaved.Description != "" {
			t.Errorf("description got = %q, want it cleared", gotSaved.Description)
		}
	})

	t.Run("Invalid Priority Error", func(t *testing.T) {
		repoMock := &mockTaskRepo{getOneFunc: found}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "task-1", Priority: "whenever"})
		if !errors.Is(err, task.ErrInvalidPriority) {
			t.Errorf("error got = %v, want %v", err, task.ErrInvalidPriority)
		}
	})

	t.Run("Moves To Unknown List Error", func(t *testing.T) {
		repoMock := &mockTaskRepo{getOneFunc: found}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		ghost := "ghost"
		_, err := uc.Update(ctx, task.UpdateTaskInput{ID: "task-1", ListID: &ghost})
		if !errors.Is(err, task.ErrListNotFound) {
			t.Errorf("error got = %v, want %v", err, task.ErrListNotFound)
		}
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("Stamps Completion Time", func(t *testing.T) {
		repoMock := &mockTaskRepo{
			getOneFunc: func(opt repository.GetOneTaskOptions) (model.Task, error) {
				return storedTask(opt.ID), nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.Complete(ctx, task.CompleteTaskInput{ID: "task-1", Completed: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.Completed || out.Task.CompletedAt == nil {
			t.Errorf("task got = completed %v at %v", out.Task.Completed, out.Task.CompletedAt)
		}
	})

	t.Run("Reopen Clears Completion Time", func(t *testing.T) {
		repoMock := &mockTaskRepo{
			getOneFunc: func(opt repository.GetOneTaskOptions) (model.Task, error) {
				done := storedTask(opt.ID)
				stamp := at(12, 0)
				done.Completed = true
				done.CompletedAt = &stamp
				return done, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.Complete(ctx, task.CompleteTaskInput{ID: "task-1", Completed: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Completed || out.Task.CompletedAt != nil {
			t.Errorf("task got = completed %v at %v, want it reopened", out.Task.Completed, out.Task.CompletedAt)
		}
	})

	t.Run("Completing Twice Keeps First Stamp", func(t *testing.T) {
		stamp := at(12, 0)
		repoMock := &mockTaskRepo{
			getOneFunc: func(opt repository.GetOneTaskOptions) (model.Task, error) {
				done := storedTask(opt.ID)
				done.Completed = true
				done.CompletedAt = &stamp
				return done, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.Complete(ctx, task.CompleteTaskInput{ID: "task-1", Completed: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.CompletedAt == nil || !out.Task.CompletedAt.Equal(stamp) {
			t.Errorf("completion time got = %v, want %v", out.Task.CompletedAt, stamp)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		deleted := false
		repoMock := &mockTaskRepo{
			deleteFunc: func(id string) error {
				deleted = true
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		err := uc.Delete(ctx, "missing")
		if !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("error got = %v, want %v", err, task.ErrTaskNotFound)
		}
		if deleted {
			t.Error("delete reached the repository for a missing task")
		}
	})

	t.Run("Success", func(t *testing.T) {
		var gotID string
		repoMock := &mockTaskRepo{
			getOneFunc: func(opt repository.GetOneTaskOptions) (model.Task, error) {
				return storedTask(opt.ID), nil
			},
			deleteFunc: func(id string) error {
				gotID = id
				return nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		if err := uc.Delete(ctx, "task-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotID != "task-1" {
			t.Errorf("deleted id got = %q", gotID)
		}
	})
}

func TestAddSubtask(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Title Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.AddSubtask(ctx, task.AddSubtaskInput{TaskID: "task-1", Title: " "})
		if !errors.Is(err, task.ErrEmptyTitle) {
			t.Errorf("error got = %v, want %v", err, task.ErrEmptyTitle)
		}
	})

	t.Run("Appends Item", func(t *testing.T) {
		repoMock := &mockTaskRepo{
			getOneFunc: func(opt repository.GetOneTaskOptions) (model.Task, error) {
				found := storedTask(opt.ID)
				found.Subtasks = []model.Subtask{{ID: "sub-1", Title: "Draft"}}
				return found, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.AddSubtask(ctx, task.AddSubtaskInput{TaskID: "task-1", Title: "  Review  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Task.Subtasks) != 2 {
			t.Fatalf("subtasks got = %d, want 2", len(out.Task.Subtasks))
		}
		added := out.Task.Subtasks[1]
		if added.Title != "Review" || added.Done || added.ID == "" {
			t.Errorf("added subtask got = %+v", added)
		}
	})
}

func TestToggleSubtask(t *testing.T) {
	ctx := context.Background()

	withChecklist := func(opt repository.GetOneTaskOptions) (model.Task, error) {
		found := storedTask(opt.ID)
		found.Subtasks = []model.Subtask{
			{ID: "sub-1", Title: "Buy milk"},
			{ID: "sub-2", Title: "buy bread"},
			{ID: "sub-3", Title: "Call mom"},
		}
		return found, nil
	}

	t.Run("By ID Flips One", func(t *testing.T) {
		repoMock := &mockTaskRepo{getOneFunc: withChecklist}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.ToggleSubtask(ctx, task.ToggleSubtaskInput{
			TaskID:    "task-1",
			SubtaskID: "sub-2",
			Done:      true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Count != 1 || !out.Updated {
			t.Errorf("count got = %d updated %v", out.Count, out.Updated)
		}
		if out.Task.Subtasks[0].Done || !out.Task.Subtasks[1].Done || out.Task.Subtasks[2].Done {
			t.Errorf("done states got = %+v", out.Task.Subtasks)
		}
	})

	t.Run("By Match Flips All Matching", func(t *testing.T) {
		repoMock := &mockTaskRepo{getOneFunc: withChecklist}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.ToggleSubtask(ctx, task.ToggleSubtaskInput{
			TaskID: "task-1",
			Match:  "BUY",
			Done:   true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Count != 2 {
			t.Errorf("count got = %d, want 2", out.Count)
		}
		if !out.Task.Subtasks[0].Done || !out.Task.Subtasks[1].Done || out.Task.Subtasks[2].Done {
			t.Errorf("done states got = %+v", out.Task.Subtasks)
		}
		if out.Progress.Done != 2 || out.Progress.Total != 3 {
			t.Errorf("progress got = %+v", out.Progress)
		}
	})

	t.Run("No Match Error", func(t *testing.T) {
		saved := false
		repoMock := &mockTaskRepo{
			getOneFunc: withChecklist,
			saveFunc: func(saving model.Task) (model.Task, error) {
				saved = true
				return saving, nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.ToggleSubtask(ctx, task.ToggleSubtaskInput{TaskID: "task-1", Match: "zzz", Done: true})
		if !errors.Is(err, task.ErrSubtaskNotFound) {
			t.Errorf("error got = %v, want %v", err, task.ErrSubtaskNotFound)
		}
		if saved {
			t.Error("save reached the repository with nothing toggled")
		}
	})
}

func TestAttachments(t *testing.T) {
	ctx := context.Background()

	withAttachments := func(opt repository.GetOneTaskOptions) (model.Task, error) {
		found := storedTask(opt.ID)
		found.Attachments = []model.Attachment{
			{ID: "att-1", Name: "Notes", URL: "https://docs.example.com/notes", CreatedAt: at(9, 0)},
			{ID: "att-2", Name: "Deck", URL: "https://docs.example.com/deck", CreatedAt: at(9, 5)},
		}
		return found, nil
	}

	t.Run("Empty URL Error", func(t *testing.T) {
		uc := usecase.New(&mockLogger{}, &mockTaskRepo{}, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.AddAttachment(ctx, task.AddAttachmentInput{TaskID: "task-1", URL: "  "})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("error got = %v, want %v", err, task.ErrEmptyInput)
		}
	})

	t.Run("Defaults Name To URL", func(t *testing.T) {
		repoMock := &mockTaskRepo{
			getOneFunc: func(opt repository.GetOneTaskOptions) (model.Task, error) {
				return storedTask(opt.ID), nil
			},
		}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.AddAttachment(ctx, task.AddAttachmentInput{
			TaskID: "task-1",
			URL:    "https://docs.example.com/spec",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Task.Attachments) != 1 {
			t.Fatalf("attachments got = %d, want 1", len(out.Task.Attachments))
		}
		added := out.Task.Attachments[0]
		if added.Name != added.URL || added.ID == "" || added.CreatedAt.IsZero() {
			t.Errorf("attachment got = %+v", added)
		}
	})

	t.Run("Delete Removes Attachment", func(t *testing.T) {
		repoMock := &mockTaskRepo{getOneFunc: withAttachments}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		out, err := uc.DeleteAttachment(ctx, task.DeleteAttachmentInput{TaskID: "task-1", AttachmentID: "att-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Task.Attachments) != 1 || out.Task.Attachments[0].ID != "att-2" {
			t.Errorf("attachments got = %+v, want only att-2", out.Task.Attachments)
		}
	})

	t.Run("Delete Missing Error", func(t *testing.T) {
		repoMock := &mockTaskRepo{getOneFunc: withAttachments}
		uc := usecase.New(&mockLogger{}, repoMock, &mockListRepo{}, nil, nil, nil, "UTC", "")

		_, err := uc.DeleteAttachment(ctx, task.DeleteAttachmentInput{TaskID: "task-1", AttachmentID: "att-9"})
		if !errors.Is(err, task.ErrAttachmentNotFound) {
			t.Errorf("error got = %v, want %v", err, task.ErrAttachmentNotFound)
		}
	})
}
