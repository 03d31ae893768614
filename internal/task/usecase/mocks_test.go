package usecase_test

import (
	"context"
	"time"

	listRepository "taskpilot/internal/list/repository"
	"taskpilot/internal/model"
	"taskpilot/internal/task/repository"
	"taskpilot/pkg/gcalendar"
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

type mockTaskRepo struct {
	createFunc    func(opt repository.CreateTaskOptions) (model.Task, error)
	getOneFunc    func(opt repository.GetOneTaskOptions) (model.Task, error)
	listFunc      func(opt repository.ListTasksOptions) ([]model.Task, int, error)
	saveFunc      func(t model.Task) (model.Task, error)
	deleteFunc    func(id string) error
	scheduledFunc func(from, to time.Time) ([]model.Task, error)
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Task{
		ID:              "task-1",
		ListID:          opt.ListID,
		Title:           opt.Title,
		Description:     opt.Description,
		DueDate:         opt.DueDate,
		DurationMinutes: opt.DurationMinutes,
		Priority:        opt.Priority,
		Labels:          opt.Labels,
		ReminderAt:      opt.ReminderAt,
	}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.Task{}, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockTaskRepo) SaveTask(ctx context.Context, t model.Task) (model.Task, error) {
	if m.saveFunc != nil {
		return m.saveFunc(t)
	}
	return t, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(id)
	}
	return nil
}

func (m *mockTaskRepo) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]model.Task, error) {
	if m.scheduledFunc != nil {
		return m.scheduledFunc(from, to)
	}
	return nil, nil
}

type mockListRepo struct {
	getOneFunc func(opt listRepository.GetOneListOptions) (model.List, error)
}

func (m *mockListRepo) CreateList(ctx context.Context, opt listRepository.CreateListOptions) (model.List, error) {
	return model.List{}, nil
}

func (m *mockListRepo) GetOneList(ctx context.Context, opt listRepository.GetOneListOptions) (model.List, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(opt)
	}
	return model.List{}, nil
}

func (m *mockListRepo) ListLists(ctx context.Context) ([]model.List, error) {
	return nil, nil
}

func (m *mockListRepo) UpdateList(ctx context.Context, opt listRepository.UpdateListOptions) (model.List, error) {
	return model.List{}, nil
}

func (m *mockListRepo) DeleteList(ctx context.Context, id string) error {
	return nil
}

// knownListRepo answers every lookup with a matching list.
func knownListRepo() *mockListRepo {
	return &mockListRepo{
		getOneFunc: func(opt listRepository.GetOneListOptions) (model.List, error) {
			return model.List{ID: opt.ID, Name: "Known"}, nil
		},
	}
}

type mockCalendar struct {
	createFunc func(req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	listFunc   func(req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.createFunc != nil {
		return m.createFunc(req)
	}
	return &gcalendar.Event{HtmlLink: "http://cal.link"}, nil
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listFunc != nil {
		return m.listFunc(req)
	}
	return nil, nil
}

// base is the fixed reference time used across these tests.
func base() time.Time {
	return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
}
