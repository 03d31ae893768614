package schedule

import (
	"sort"
	"time"
)

// Reason strings attached to suggestions. The wording is presentation only;
// callers wanting to localize can match on these constants.
const (
	ReasonMorning   = "Morning hours are great for focused, high-energy work"
	ReasonAfternoon = "Afternoon is well suited for deep work"
	ReasonLunch     = "Around midday, handy for meetings and catch-ups"
	ReasonOpenSlot  = "Open slot with no tasks nearby"
	ReasonGeneric   = "Fits well with your existing schedule"
	ReasonFallback  = "First slot of the next working day"
)

// Hour bands behind the confidence and reason heuristics, inclusive.
const (
	morningStart   = 9
	morningEnd     = 11
	afternoonStart = 14
	afternoonEnd   = 16
	lunchStart     = 11
	lunchEnd       = 13
)

// nearbyWindow is how close another commitment's start must be for a slot to
// lose its "no tasks nearby" reason.
const nearbyWindow = 2 * time.Hour

// Planner computes free slots and suggestions inside a working-hours window.
// It is pure: every method is a function of its arguments and the Config, so
// a single Planner is safe for concurrent use.
type Planner struct {
	cfg Config
}

// NewPlanner returns a Planner over cfg. Nonsensical fields (an empty window,
// zero probe budget) fall back to their defaults so the planner stays total.
func NewPlanner(cfg Config) *Planner {
	def := DefaultConfig()
	if cfg.WorkEndHour <= cfg.WorkStartHour {
		cfg.WorkStartHour = def.WorkStartHour
		cfg.WorkEndHour = def.WorkEndHour
	}
	if cfg.BreakMinutes < 0 {
		cfg.BreakMinutes = def.BreakMinutes
	}
	if cfg.DefaultDurationMinutes <= 0 {
		cfg.DefaultDurationMinutes = def.DefaultDurationMinutes
	}
	if cfg.MaxSuggestions <= 0 {
		cfg.MaxSuggestions = def.MaxSuggestions
	}
	if cfg.ProbeStepMinutes <= 0 {
		cfg.ProbeStepMinutes = def.ProbeStepMinutes
	}
	if cfg.MaxProbes <= 0 {
		cfg.MaxProbes = def.MaxProbes
	}
	return &Planner{cfg: cfg}
}

// Config returns the normalized configuration the planner runs with.
func (p *Planner) Config() Config {
	return p.cfg
}

// FreeSlots computes candidate slots of the requested duration on day's
// working window. Commitments must already be filtered to that day and
// sorted ascending by start; the walk emits at most one candidate per gap
// plus one trailing candidate, so at most len(commitments)+1 slots. It is
// not an exhaustive packing.
func (p *Planner) FreeSlots(day time.Time, commitments []TaskSlot, durationMinutes int) []Interval {
	duration := p.duration(durationMinutes)
	pause := time.Duration(p.cfg.BreakMinutes) * time.Minute

	cursor := time.Date(day.Year(), day.Month(), day.Day(), p.cfg.WorkStartHour, 0, 0, 0, day.Location())
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), p.cfg.WorkEndHour, 0, 0, 0, day.Location())

	var slots []Interval
	for _, c := range commitments {
		gap := c.Start.Sub(cursor)
		if gap >= duration+pause && !cursor.Add(duration).After(c.Start) {
			slots = append(slots, Interval{Start: cursor, End: cursor.Add(duration)})
		}
		cursor = c.End.Add(pause)
	}
	if !cursor.Add(duration).After(windowEnd) {
		slots = append(slots, Interval{Start: cursor, End: cursor.Add(duration)})
	}
	return slots
}

// Suggest proposes up to MaxSuggestions start times for a new task, never
// returning an empty slice. now is the caller's clock and decides the target
// day when no preferred date is given; commitments may span any number of
// days and are filtered to the target day here.
func (p *Planner) Suggest(now time.Time, commitments []TaskSlot, opts SuggestOptions) []Suggestion {
	target := p.targetDay(now, opts)

	sameDay := make([]TaskSlot, 0, len(commitments))
	for _, c := range commitments {
		if sameCalendarDay(c.Start, target) {
			sameDay = append(sameDay, c)
		}
	}
	sort.Slice(sameDay, func(i, j int) bool { return sameDay[i].Start.Before(sameDay[j].Start) })

	slots := p.FreeSlots(target, sameDay, opts.DurationMinutes)
	if len(slots) > p.cfg.MaxSuggestions {
		slots = slots[:p.cfg.MaxSuggestions]
	}

	suggestions := make([]Suggestion, 0, len(slots))
	for _, slot := range slots {
		suggestions = append(suggestions, Suggestion{
			Time:       slot.Start,
			Reason:     p.reason(slot.Start, sameDay),
			Confidence: p.confidence(slot.Start),
		})
	}
	if len(suggestions) == 0 {
		next := now.AddDate(0, 0, 1)
		fallback := time.Date(next.Year(), next.Month(), next.Day(), p.cfg.WorkStartHour, 0, 0, 0, now.Location())
		suggestions = append(suggestions, Suggestion{
			Time:       fallback,
			Reason:     ReasonFallback,
			Confidence: ConfidenceMedium,
		})
	}
	return suggestions
}

// HasConflict reports whether the proposed interval overlaps any commitment.
// Intervals are half-open, so touching endpoints do not conflict.
func (p *Planner) HasConflict(start time.Time, durationMinutes int, commitments []TaskSlot) bool {
	end := start.Add(p.duration(durationMinutes))
	for _, c := range commitments {
		if start.Before(c.End) && c.Start.Before(end) {
			return true
		}
	}
	return false
}

// NextAvailable probes forward from fromTime in ProbeStepMinutes increments,
// fromTime included, for the first conflict-free start. The boolean is false
// when the whole probe budget conflicts.
func (p *Planner) NextAvailable(fromTime time.Time, durationMinutes int, commitments []TaskSlot) (time.Time, bool) {
	step := time.Duration(p.cfg.ProbeStepMinutes) * time.Minute
	probe := fromTime
	for i := 0; i < p.cfg.MaxProbes; i++ {
		if !p.HasConflict(probe, durationMinutes, commitments) {
			return probe, true
		}
		probe = probe.Add(step)
	}
	return time.Time{}, false
}

// targetDay picks the day Suggest plans on: the preferred date when given,
// today while the working day is still running, otherwise tomorrow.
func (p *Planner) targetDay(now time.Time, opts SuggestOptions) time.Time {
	if opts.PreferredDate != nil {
		return *opts.PreferredDate
	}
	if now.Hour() < p.cfg.WorkEndHour {
		return now
	}
	return now.AddDate(0, 0, 1)
}

// confidence rates a start hour. Priority deliberately plays no part.
func (p *Planner) confidence(start time.Time) Confidence {
	hour := start.Hour()
	switch {
	case (hour >= morningStart && hour <= morningEnd) || (hour >= afternoonStart && hour <= afternoonEnd):
		return ConfidenceHigh
	case hour >= p.cfg.WorkStartHour && hour < p.cfg.WorkEndHour:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// reason explains a suggested start. Branch order matters: the morning and
// afternoon bands win over the overlapping midday band.
func (p *Planner) reason(start time.Time, commitments []TaskSlot) string {
	hour := start.Hour()
	switch {
	case hour >= morningStart && hour <= morningEnd:
		return ReasonMorning
	case hour >= afternoonStart && hour <= afternoonEnd:
		return ReasonAfternoon
	case hour >= lunchStart && hour <= lunchEnd:
		return ReasonLunch
	}
	for _, c := range commitments {
		d := c.Start.Sub(start)
		if d < 0 {
			d = -d
		}
		if d <= nearbyWindow {
			return ReasonGeneric
		}
	}
	return ReasonOpenSlot
}

func (p *Planner) duration(minutes int) time.Duration {
	if minutes <= 0 {
		minutes = p.cfg.DefaultDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
