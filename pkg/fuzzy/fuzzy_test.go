package fuzzy_test

import (
	"testing"

	"pgregory.net/rapid"

	"taskpilot/pkg/fuzzy"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		target  string
		wantOK  bool
	}{
		{name: "Empty pattern matches", pattern: "", target: "anything", wantOK: true},
		{name: "Exact substring", pattern: "rent", target: "pay rent", wantOK: true},
		{name: "Case insensitive", pattern: "RENT", target: "Pay Rent", wantOK: true},
		{name: "Subsequence", pattern: "pr", target: "pay rent", wantOK: true},
		{name: "Out of order is no match", pattern: "tr", target: "rent", wantOK: false},
		{name: "Missing rune is no match", pattern: "rentx", target: "rent", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := fuzzy.Score(tt.pattern, tt.target); ok != tt.wantOK {
				t.Errorf("Score(%q, %q) ok = %v, want %v", tt.pattern, tt.target, ok, tt.wantOK)
			}
		})
	}
}

func TestScoreOrdering(t *testing.T) {
	substring, _ := fuzzy.Score("rent", "pay rent")
	subsequence, _ := fuzzy.Score("pyrt", "pay rent")
	if substring <= subsequence {
		t.Errorf("substring score %d should beat subsequence score %d", substring, subsequence)
	}

	early, _ := fuzzy.Score("pay", "pay rent early")
	late, _ := fuzzy.Score("pay", "better pay rent")
	if early <= late {
		t.Errorf("early hit score %d should beat late hit score %d", early, late)
	}

	tight, _ := fuzzy.Score("pr", "print")
	loose, _ := fuzzy.Score("pr", "polar bear")
	if tight <= loose {
		t.Errorf("tight score %d should beat loose score %d", tight, loose)
	}
}

func TestScoreSubsequenceAlwaysMatches(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		target := rapid.StringN(1, 40, -1).Draw(rt, "target")
		runes := []rune(target)
		keep := rapid.SliceOfN(rapid.IntRange(0, len(runes)-1), 1, len(runes)).Draw(rt, "keep")

		seen := make(map[int]bool)
		var pattern []rune
		for _, idx := range keep {
			seen[idx] = true
		}
		for i, r := range runes {
			if seen[i] {
				pattern = append(pattern, r)
			}
		}

		if !fuzzy.Matches(string(pattern), target) {
			t.Errorf("Matches(%q, %q) = false for an in-order subsequence", string(pattern), target)
		}
	})
}
