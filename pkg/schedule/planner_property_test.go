package schedule_test

import (
	"sort"
	"testing"
	"time"

	"pgregory.net/rapid"

	"taskpilot/pkg/schedule"
)

// drawCommitments generates a sorted, non-overlapping set of commitments on
// the given day, in 5 minute granularity across the working window.
func drawCommitments(rt *rapid.T, day time.Time) []schedule.TaskSlot {
	offsets := rapid.SliceOfN(rapid.IntRange(0, 108), 0, 12).Draw(rt, "offsets")
	sort.Ints(offsets)

	var commitments []schedule.TaskSlot
	for i := 0; i+1 < len(offsets); i += 2 {
		if offsets[i] == offsets[i+1] {
			continue
		}
		start := day.Add(time.Duration(9*60+offsets[i]*5) * time.Minute)
		end := day.Add(time.Duration(9*60+offsets[i+1]*5) * time.Minute)
		commitments = append(commitments, schedule.TaskSlot{
			Interval: schedule.Interval{Start: start, End: end},
			Title:    "busy",
		})
	}
	return commitments
}

func TestFreeSlotsNeverConflict(t *testing.T) {
	planner := schedule.NewPlanner(schedule.DefaultConfig())
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		commitments := drawCommitments(rt, day)
		duration := rapid.IntRange(5, 120).Draw(rt, "duration")

		for _, slot := range planner.FreeSlots(day, commitments, duration) {
			if planner.HasConflict(slot.Start, duration, commitments) {
				t.Errorf("free slot %v conflicts with commitments %v", slot, commitments)
			}
		}
	})
}

func TestFreeSlotsBoundedByGapCount(t *testing.T) {
	planner := schedule.NewPlanner(schedule.DefaultConfig())
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		commitments := drawCommitments(rt, day)
		duration := rapid.IntRange(5, 120).Draw(rt, "duration")

		if got := planner.FreeSlots(day, commitments, duration); len(got) > len(commitments)+1 {
			t.Errorf("FreeSlots() returned %d slots for %d commitments", len(got), len(commitments))
		}
	})
}

func TestSuggestNeverEmptyAndBounded(t *testing.T) {
	cfg := schedule.DefaultConfig()
	planner := schedule.NewPlanner(cfg)
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		commitments := drawCommitments(rt, day)
		hour := rapid.IntRange(0, 23).Draw(rt, "hour")
		now := day.Add(time.Duration(hour) * time.Hour)

		got := planner.Suggest(now, commitments, schedule.SuggestOptions{})
		if len(got) == 0 {
			t.Fatalf("Suggest() returned no suggestions")
		}
		if len(got) > cfg.MaxSuggestions {
			t.Errorf("Suggest() returned %d suggestions, cap is %d", len(got), cfg.MaxSuggestions)
		}
	})
}

func TestNextAvailableFindsConflictFreeStart(t *testing.T) {
	planner := schedule.NewPlanner(schedule.DefaultConfig())
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		commitments := drawCommitments(rt, day)
		duration := rapid.IntRange(5, 120).Draw(rt, "duration")
		from := day.Add(time.Duration(rapid.IntRange(0, 24*60).Draw(rt, "fromMinute")) * time.Minute)

		got, ok := planner.NextAvailable(from, duration, commitments)
		if !ok {
			return
		}
		if planner.HasConflict(got, duration, commitments) {
			t.Errorf("NextAvailable() = %v still conflicts", got)
		}
		if got.Before(from) {
			t.Errorf("NextAvailable() = %v is before %v", got, from)
		}
	})
}
