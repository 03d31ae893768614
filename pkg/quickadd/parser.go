package quickadd

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// clockPattern matches explicit clock times such as "at 5", "5:30", "7pm" or
// "at 5:30pm". A bare hour needs at least one marker (an "at" prefix, a
// minutes part, or a meridiem) so counts like "read 5 pages" keep their
// numbers.
var clockPattern = regexp.MustCompile(`(?i)\b(?:(at)\s+)?(\d{1,2})(?::([0-5][0-9]))?\s*(am|pm)?\b`)

// Parser extracts a structured Intent from a free-form quick-add line. It is
// purely lexical: ordered keyword tables plus one clock regex. The same input
// and reference time always produce the same Intent. Safe for concurrent use.
type Parser struct {
	vocab Vocabulary
	words map[string]*regexp.Regexp
}

// NewParser returns a Parser over the built-in vocabulary.
func NewParser() *Parser {
	return NewParserWithVocabulary(DefaultVocabulary())
}

// NewParserWithVocabulary returns a Parser over custom keyword tables.
// Matching of every table entry is case-insensitive and whole-word.
func NewParserWithVocabulary(v Vocabulary) *Parser {
	if v.DefaultTitle == "" {
		v.DefaultTitle = DefaultTitle
	}
	p := &Parser{
		vocab: v,
		words: make(map[string]*regexp.Regexp),
	}
	for _, w := range v.TimeWords {
		p.compile(w.Word)
	}
	for _, w := range v.DateWords {
		p.compile(w.Phrase)
	}
	for _, w := range v.PriorityWords {
		p.compile(w.Word)
	}
	for _, w := range v.LabelWords {
		p.compile(w)
	}
	for _, w := range v.FillerWords {
		p.compile(w)
	}
	return p
}

func (p *Parser) compile(phrase string) {
	if _, ok := p.words[phrase]; ok {
		return
	}
	p.words[phrase] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

// Extract parses a single quick-add line relative to now. It never returns an
// error: whatever the tables do not match simply stays at its default, and a
// title that strips down to nothing becomes the default title.
func (p *Parser) Extract(input string, now time.Time) Intent {
	clocks := p.clockMatches(input)
	tod := p.resolveTime(input, clocks)
	date := p.resolveDate(input, now)

	intent := Intent{
		Priority: p.resolvePriority(input),
		Labels:   p.resolveLabels(input),
	}

	switch {
	case date != nil && tod != nil:
		due := time.Date(date.Year(), date.Month(), date.Day(), tod.hour, tod.minute, 0, 0, date.Location())
		intent.DueDate = &due
	case date != nil:
		intent.DueDate = date
	case tod != nil:
		due := time.Date(now.Year(), now.Month(), now.Day(), tod.hour, tod.minute, 0, 0, now.Location())
		intent.DueDate = &due
	}

	intent.Title = p.resolveTitle(input, clocks)
	if intent.Title == "" {
		intent.Title = p.vocab.DefaultTitle
	}
	return intent
}

type clockMatch struct {
	span   []int
	hour   int
	minute int
}

// clockMatches returns every valid clock-time match in left-to-right order.
// Bare numbers without any marker and impossible hours are not matches.
func (p *Parser) clockMatches(input string) []clockMatch {
	var matches []clockMatch
	for _, m := range clockPattern.FindAllStringSubmatchIndex(input, -1) {
		hasPrefix := m[2] >= 0
		hasMinutes := m[6] >= 0
		hasMeridiem := m[8] >= 0
		if !hasPrefix && !hasMinutes && !hasMeridiem {
			continue
		}
		hour, _ := strconv.Atoi(input[m[4]:m[5]])
		if hour > 23 {
			continue
		}
		c := clockMatch{span: []int{m[0], m[1]}, hour: hour}
		if hasMinutes {
			c.minute, _ = strconv.Atoi(input[m[6]:m[7]])
		}
		if hasMeridiem {
			switch strings.ToLower(input[m[8]:m[9]]) {
			case "pm":
				if hour < 12 {
					c.hour = hour + 12
				}
			case "am":
				if hour == 12 {
					c.hour = 0
				}
			}
		}
		matches = append(matches, c)
	}
	return matches
}

// resolveTime picks the first explicit clock match, falling back to the first
// time-of-day word in vocabulary order.
func (p *Parser) resolveTime(input string, clocks []clockMatch) *clockMatch {
	if len(clocks) > 0 {
		return &clocks[0]
	}
	for _, w := range p.vocab.TimeWords {
		if p.words[w.Word].MatchString(input) {
			return &clockMatch{hour: w.Hour}
		}
	}
	return nil
}

// resolveDate finds the first date phrase in vocabulary order, regardless of
// where each phrase sits in the input, and resolves it to local midnight.
func (p *Parser) resolveDate(input string, now time.Time) *time.Time {
	for _, w := range p.vocab.DateWords {
		if p.words[w.Phrase].MatchString(input) {
			d := w.Resolve(now)
			return &d
		}
	}
	return nil
}

// resolvePriority returns the priority of the first mapping entry whose
// keyword appears in the input. The mapping's declared order decides ties, not
// the position of the keywords in the input. No hit means medium.
func (p *Parser) resolvePriority(input string) Priority {
	for _, w := range p.vocab.PriorityWords {
		if p.words[w.Word].MatchString(input) {
			return w.Priority
		}
	}
	return PriorityMedium
}

// resolveLabels collects every label word present in the input, in vocabulary
// order, each at most once.
func (p *Parser) resolveLabels(input string) []string {
	var labels []string
	for _, w := range p.vocab.LabelWords {
		if p.words[w].MatchString(input) {
			labels = append(labels, w)
		}
	}
	return labels
}

// resolveTitle strips every valid clock match plus every occurrence of every
// vocabulary entry from the input, then collapses the leftover whitespace.
// Spans are found first and the string rebuilt around them in one pass, so
// adjacent or overlapping matches cannot interact.
func (p *Parser) resolveTitle(input string, clocks []clockMatch) string {
	spans := make([][]int, 0, 8)
	for _, c := range clocks {
		spans = append(spans, c.span)
	}
	collect := func(phrase string) {
		spans = append(spans, p.words[phrase].FindAllStringIndex(input, -1)...)
	}
	for _, w := range p.vocab.TimeWords {
		collect(w.Word)
	}
	for _, w := range p.vocab.DateWords {
		collect(w.Phrase)
	}
	for _, w := range p.vocab.PriorityWords {
		collect(w.Word)
	}
	for _, w := range p.vocab.LabelWords {
		collect(w)
	}
	for _, w := range p.vocab.FillerWords {
		collect(w)
	}
	if len(spans) == 0 {
		return strings.Join(strings.Fields(input), " ")
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i][0] < spans[j][0] })

	var b strings.Builder
	pos := 0
	for _, s := range spans {
		if s[0] > pos {
			b.WriteString(input[pos:s[0]])
			b.WriteByte(' ')
		}
		if s[1] > pos {
			pos = s[1]
		}
	}
	if pos < len(input) {
		b.WriteString(input[pos:])
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
