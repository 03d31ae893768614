package schedule

import "time"

// Confidence is a coarse rating of how good a suggested start time is.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Interval is a half-open time range [Start, End). Callers are responsible
// for Start < End; the planner assumes it.
type Interval struct {
	Start time.Time
	End   time.Time
}

// TaskSlot is an existing commitment the planner must plan around.
type TaskSlot struct {
	Interval
	Title    string
	Priority string
}

// Suggestion is one proposed start time. Produced fresh per call, never
// persisted.
type Suggestion struct {
	Time       time.Time
	Reason     string
	Confidence Confidence
}

// SuggestOptions tunes a Suggest call. PreferredDate pins the target day;
// otherwise the planner picks today or tomorrow from the caller's clock.
// Priority is carried for the caller's benefit only and does not influence
// ranking.
type SuggestOptions struct {
	PreferredDate   *time.Time
	Priority        string
	DurationMinutes int
}

// Config is the planner's working-hours policy. All fields have sane
// defaults, see DefaultConfig.
type Config struct {
	WorkStartHour          int
	WorkEndHour            int
	BreakMinutes           int
	DefaultDurationMinutes int
	MaxSuggestions         int
	ProbeStepMinutes       int
	MaxProbes              int
}

// DefaultConfig returns the standard nine-to-six policy with a 15 minute
// break between commitments.
func DefaultConfig() Config {
	return Config{
		WorkStartHour:          9,
		WorkEndHour:            18,
		BreakMinutes:           15,
		DefaultDurationMinutes: 60,
		MaxSuggestions:         5,
		ProbeStepMinutes:       15,
		MaxProbes:              96,
	}
}
