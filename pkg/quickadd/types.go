package quickadd

import "time"

// Priority is the task priority extracted from free text.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Intent is the structured result of parsing one quick-add input line.
// Fields that nothing in the input matched stay at their zero/default value;
// parsing never fails.
type Intent struct {
	Title       string
	Description string // reserved: extraction never fills it today
	DueDate     *time.Time
	Priority    Priority
	Labels      []string
}

// TimeWord maps a time-of-day word to a 24h clock hour (minutes are zero).
type TimeWord struct {
	Word string
	Hour int
}

// DateResolver computes a calendar date (local midnight) relative to now.
type DateResolver func(now time.Time) time.Time

// DateWord maps a date phrase to its resolver. Slice order is precedence:
// the first phrase found anywhere in the input wins, regardless of where it
// appears relative to other phrases.
type DateWord struct {
	Phrase  string
	Resolve DateResolver
}

// PriorityWord maps a keyword to a priority. Slice order is precedence.
type PriorityWord struct {
	Word     string
	Priority Priority
}

// Vocabulary holds every keyword table the parser scans. The tables are data,
// not logic: callers may swap in their own to change the parser's language
// without touching the extraction algorithm.
type Vocabulary struct {
	TimeWords     []TimeWord
	DateWords     []DateWord
	PriorityWords []PriorityWord
	LabelWords    []string
	FillerWords   []string
	DefaultTitle  string
}
