package quickadd

import "time"

// DefaultTitle is used when stripping every recognized keyword leaves nothing.
const DefaultTitle = "New Task"

// DefaultVocabulary returns the built-in keyword tables. Order inside each
// table matters: scans stop at the first entry present in the input.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		TimeWords: []TimeWord{
			{Word: "morning", Hour: 9},
			{Word: "afternoon", Hour: 14},
			{Word: "evening", Hour: 18},
			{Word: "night", Hour: 20},
			{Word: "midnight", Hour: 0},
			{Word: "noon", Hour: 12},
		},
		DateWords: []DateWord{
			{Phrase: "today", Resolve: sameDay},
			{Phrase: "tomorrow", Resolve: daysFromNow(1)},
			{Phrase: "yesterday", Resolve: daysFromNow(-1)},
			{Phrase: "next week", Resolve: daysFromNow(7)},
			{Phrase: "next month", Resolve: monthsFromNow(1)},
			{Phrase: "end of week", Resolve: endOfWeek},
			{Phrase: "end of month", Resolve: endOfNextMonth},
		},
		PriorityWords: []PriorityWord{
			{Word: "low", Priority: PriorityLow},
			{Word: "medium", Priority: PriorityMedium},
			{Word: "high", Priority: PriorityHigh},
			{Word: "urgent", Priority: PriorityUrgent},
			{Word: "important", Priority: PriorityHigh},
			{Word: "critical", Priority: PriorityUrgent},
			{Word: "asap", Priority: PriorityUrgent},
		},
		LabelWords: []string{
			"work", "personal", "urgent", "meeting", "call", "email",
			"shopping", "health", "finance", "home", "family", "friends",
			"travel", "project",
		},
		FillerWords: []string{
			"at", "on", "in", "for", "with", "by", "due", "deadline",
			"priority", "label",
		},
		DefaultTitle: DefaultTitle,
	}
}

func sameDay(now time.Time) time.Time {
	return midnight(now)
}

func daysFromNow(days int) DateResolver {
	return func(now time.Time) time.Time {
		return midnight(now.AddDate(0, 0, days))
	}
}

func monthsFromNow(months int) DateResolver {
	return func(now time.Time) time.Time {
		return midnight(now.AddDate(0, months, 0))
	}
}

// endOfWeek resolves to the Sunday that closes the current Monday-start week.
// On a Sunday it resolves to the same day.
func endOfWeek(now time.Time) time.Time {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return midnight(now.AddDate(0, 0, 7-weekday))
}

// endOfNextMonth resolves to the last day of the month after the current
// one. Intentionally not the current month's last day.
func endOfNextMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()+2, 0, 0, 0, 0, 0, now.Location())
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
