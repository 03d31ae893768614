package usecase

import (
	"context"
	"time"

	listRepository "taskpilot/internal/list/repository"
	"taskpilot/internal/task/repository"
	"taskpilot/pkg/gcalendar"
	pkgLog "taskpilot/pkg/log"
	"taskpilot/pkg/quickadd"
	"taskpilot/pkg/schedule"
)

// Calendar is the slice of the Google Calendar client the usecase needs.
// A nil Calendar disables mirroring and busy-interval merging.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	listRepo   listRepository.Repository
	parser     *quickadd.Parser
	planner    *schedule.Planner
	calendar   Calendar
	timezone   string
	calendarID string
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	listRepo listRepository.Repository,
	parser *quickadd.Parser,
	planner *schedule.Planner,
	calendar Calendar,
	timezone string,
	calendarID string,
) *implUseCase {
	if parser == nil {
		parser = quickadd.NewParser()
	}
	if planner == nil {
		planner = schedule.NewPlanner(schedule.DefaultConfig())
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		listRepo:   listRepo,
		parser:     parser,
		planner:    planner,
		calendar:   calendar,
		timezone:   timezone,
		calendarID: calendarID,
	}
}

// location resolves the configured timezone, falling back to UTC.
func (uc *implUseCase) location() *time.Location {
	loc, err := time.LoadLocation(uc.timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// nowOr returns t unless it is zero, in which case the current time in the
// configured timezone is used. Inputs carry their reference time so tests
// and previews stay deterministic.
func (uc *implUseCase) nowOr(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().In(uc.location())
	}
	return t
}
