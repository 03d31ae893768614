package usecase

import (
	"context"
	"sort"
	"time"

	"taskpilot/internal/task"
	"taskpilot/pkg/gcalendar"
	"taskpilot/pkg/schedule"
)

// Suggest loads the scheduling window's commitments and returns ranked
// suggestion times from the planner.
func (uc *implUseCase) Suggest(ctx context.Context, input task.SuggestInput) (task.SuggestOutput, error) {
	now := uc.nowOr(input.Now)

	day := now
	if input.PreferredDate != nil {
		day = *input.PreferredDate
	}
	from := startOfDay(day)
	// Two days of commitments cover the evening roll to the next day.
	to := from.AddDate(0, 0, 2)

	commitments, err := uc.commitments(ctx, from, to, "")
	if err != nil {
		return task.SuggestOutput{}, err
	}

	suggestions := uc.planner.Suggest(now, commitments, schedule.SuggestOptions{
		PreferredDate:   input.PreferredDate,
		Priority:        input.Priority,
		DurationMinutes: input.DurationMinutes,
	})

	return task.SuggestOutput{Suggestions: suggestions}, nil
}

// CheckConflict reports whether the proposed interval overlaps an existing
// commitment. ExcludeTaskID lets a reschedule ignore the task's own slot.
func (uc *implUseCase) CheckConflict(ctx context.Context, input task.CheckConflictInput) (task.CheckConflictOutput, error) {
	from := startOfDay(input.Start)
	to := from.AddDate(0, 0, 2)

	commitments, err := uc.commitments(ctx, from, to, input.ExcludeTaskID)
	if err != nil {
		return task.CheckConflictOutput{}, err
	}

	return task.CheckConflictOutput{
		Conflict: uc.planner.HasConflict(input.Start, input.DurationMinutes, commitments),
	}, nil
}

// NextAvailable walks forward from the given time and returns the first
// conflict-free start, if the probe budget finds one.
func (uc *implUseCase) NextAvailable(ctx context.Context, input task.NextAvailableInput) (task.NextAvailableOutput, error) {
	from := uc.nowOr(input.From)

	// The probe walk is bounded to a day, two days of commitments suffice.
	commitments, err := uc.commitments(ctx, startOfDay(from), from.Add(48*time.Hour), "")
	if err != nil {
		return task.NextAvailableOutput{}, err
	}

	start, found := uc.planner.NextAvailable(from, input.DurationMinutes, commitments)
	return task.NextAvailableOutput{
		Start: start,
		Found: found,
	}, nil
}

// commitments maps stored scheduled tasks plus calendar busy intervals in
// [from, to) to sorted planner slots.
func (uc *implUseCase) commitments(ctx context.Context, from, to time.Time, excludeID string) ([]schedule.TaskSlot, error) {
	tasks, err := uc.repo.ListScheduledBetween(ctx, from, to)
	if err != nil {
		uc.l.Errorf(ctx, "uc.commitments ListScheduledBetween: %v", err)
		return nil, err
	}

	defaultDuration := uc.planner.Config().DefaultDurationMinutes
	slots := make([]schedule.TaskSlot, 0, len(tasks))
	for _, t := range tasks {
		if t.ID == excludeID || t.DueDate == nil {
			continue
		}
		duration := t.DurationMinutes
		if duration <= 0 {
			duration = defaultDuration
		}
		start := *t.DueDate
		slots = append(slots, schedule.TaskSlot{
			Interval: schedule.Interval{
				Start: start,
				End:   start.Add(time.Duration(duration) * time.Minute),
			},
			Title:    t.Title,
			Priority: string(t.Priority),
		})
	}

	slots = append(slots, uc.calendarBusy(ctx, from, to)...)

	// FreeSlots expects commitments sorted ascending by start.
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
	return slots, nil
}

// calendarBusy fetches busy intervals from the calendar. Failures degrade
// to an empty set so scheduling keeps working offline.
func (uc *implUseCase) calendarBusy(ctx context.Context, from, to time.Time) []schedule.TaskSlot {
	if uc.calendar == nil {
		return nil
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: uc.calendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.calendarBusy: ListEvents failed (non-fatal): %v", err)
		return nil
	}

	var slots []schedule.TaskSlot
	for _, ev := range events {
		if ev.StartTime.IsZero() || !ev.EndTime.After(ev.StartTime) {
			continue
		}
		slots = append(slots, schedule.TaskSlot{
			Interval: schedule.Interval{Start: ev.StartTime, End: ev.EndTime},
			Title:    slotTitle(ev.Summary),
		})
	}
	return slots
}
