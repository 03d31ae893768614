package usecase

import (
	"context"
	"fmt"
	"time"

	listRepo "taskpilot/internal/list/repository"
	"taskpilot/internal/model"
	"taskpilot/internal/task"
	repo "taskpilot/internal/task/repository"
	"taskpilot/pkg/gcalendar"
)

// getTask loads a task by ID, mapping absence to ErrTaskNotFound.
func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.getTask GetOneTask: %v", err)
		return model.Task{}, err
	}
	if found.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return found, nil
}

// ensureListExists verifies the referenced list. An empty ID is the inbox
// and always valid.
func (uc *implUseCase) ensureListExists(ctx context.Context, listID string) error {
	if listID == "" {
		return nil
	}
	found, err := uc.listRepo.GetOneList(ctx, listRepo.GetOneListOptions{ID: listID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ensureListExists GetOneList: %v", err)
		return err
	}
	if found.ID == "" {
		return task.ErrListNotFound
	}
	return nil
}

// tryCreateCalendarEvent attempts to create a Google Calendar event for a
// scheduled task. Returns the event HTML link, or empty string on failure
// (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	startTime := *t.DueDate
	duration := t.DurationMinutes
	if duration <= 0 {
		duration = uc.planner.Config().DefaultDurationMinutes
	}
	endTime := startTime.Add(time.Duration(duration) * time.Minute)

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.tryCreateCalendarEvent: event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// slotTitle labels a calendar busy interval for planner output.
func slotTitle(summary string) string {
	if summary == "" {
		return "Busy"
	}
	return fmt.Sprintf("Calendar: %s", summary)
}
