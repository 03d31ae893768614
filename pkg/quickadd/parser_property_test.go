package quickadd_test

import (
	"reflect"
	"testing"
	"time"

	"pgregory.net/rapid"

	"taskpilot/pkg/quickadd"
)

// The extractor is a total function: whatever the input, the title is never
// empty, the priority is always one of the four known values, labels only
// ever come from the vocabulary, and the same input parses the same way
// every time.

func TestExtractTitleNeverEmpty(t *testing.T) {
	parser := quickadd.NewParser()
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		got := parser.Extract(input, now)
		if got.Title == "" {
			t.Errorf("Extract(%q) returned empty title", input)
		}
	})
}

func TestExtractPriorityAlwaysValid(t *testing.T) {
	parser := quickadd.NewParser()
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	valid := map[quickadd.Priority]bool{
		quickadd.PriorityLow:    true,
		quickadd.PriorityMedium: true,
		quickadd.PriorityHigh:   true,
		quickadd.PriorityUrgent: true,
	}

	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		got := parser.Extract(input, now)
		if !valid[got.Priority] {
			t.Errorf("Extract(%q) priority = %q", input, got.Priority)
		}
	})
}

func TestExtractLabelsFromVocabulary(t *testing.T) {
	parser := quickadd.NewParser()
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	known := make(map[string]bool)
	for _, label := range quickadd.DefaultVocabulary().LabelWords {
		known[label] = true
	}

	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		for _, label := range parser.Extract(input, now).Labels {
			if !known[label] {
				t.Errorf("Extract(%q) produced unknown label %q", input, label)
			}
		}
	})
}

func TestExtractDeterministic(t *testing.T) {
	parser := quickadd.NewParser()
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")
		first := parser.Extract(input, now)
		second := parser.Extract(input, now)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Extract(%q) not deterministic: %+v vs %+v", input, first, second)
		}
	})
}
