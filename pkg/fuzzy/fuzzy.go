package fuzzy

import "strings"

const (
	substringBase     = 100
	subsequenceBase   = 50
	wordBoundaryBonus = 10
)

// Score rates how well pattern matches target, case-insensitively. Exact
// substring hits outrank subsequence hits, earlier and tighter hits outrank
// later and looser ones. ok is false when pattern is not even a subsequence
// of target; an empty pattern matches everything with score zero.
func Score(pattern, target string) (score int, ok bool) {
	p := strings.ToLower(pattern)
	t := strings.ToLower(target)
	if p == "" {
		return 0, true
	}

	if idx := strings.Index(t, p); idx >= 0 {
		score = substringBase - idx
		if idx == 0 || t[idx-1] == ' ' {
			score += wordBoundaryBonus
		}
		return score, true
	}

	pr := []rune(p)
	tr := []rune(t)
	first, last := -1, -1
	ti := 0
	for _, r := range pr {
		found := false
		for ti < len(tr) {
			if tr[ti] == r {
				if first < 0 {
					first = ti
				}
				last = ti
				ti++
				found = true
				break
			}
			ti++
		}
		if !found {
			return 0, false
		}
	}
	// Tighter clusters near the front score best.
	spread := last - first + 1 - len(pr)
	return subsequenceBase - first - spread, true
}

// Matches reports whether pattern matches target at all.
func Matches(pattern, target string) bool {
	_, ok := Score(pattern, target)
	return ok
}
