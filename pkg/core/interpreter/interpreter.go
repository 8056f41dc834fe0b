// Package interpreter turns human-authored constraint statements into
// structured rules by token and phrase matching against explicit lexicons.
package interpreter

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// UninterpretableRuleError reports text with no recognizable constraint
// pattern. Recoverable: the caller may fall back to structured entry.
type UninterpretableRuleError struct {
	Text string
}

func (e *UninterpretableRuleError) Error() string {
	return fmt.Sprintf("no recognizable constraint pattern in %q", e.Text)
}

// Interpreter resolves employee-name references against a roster snapshot.
// It is pure over its inputs and safe for concurrent use.
type Interpreter struct {
	names []nameEntry
}

type nameEntry struct {
	employeeID string
	pattern    *regexp.Regexp
}

// New builds an interpreter for the given employee directory. Full names
// are indexed before first names so the longer reference wins.
func New(employees []model.Employee) *Interpreter {
	it := &Interpreter{}
	for _, e := range employees {
		if e.Name == "" {
			continue
		}
		it.names = append(it.names, nameEntry{
			employeeID: e.ID,
			pattern:    wordPattern(e.Name),
		})
	}
	for _, e := range employees {
		first, _, cut := strings.Cut(e.Name, " ")
		if !cut || first == "" {
			continue
		}
		it.names = append(it.names, nameEntry{
			employeeID: e.ID,
			pattern:    wordPattern(first),
		})
	}
	return it
}

func wordPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
}

const clockPattern = `(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`

var (
	rangeRe    = regexp.MustCompile(`(?:from|between)\s+` + clockPattern + `\s+(?:to|and|until)\s+` + clockPattern)
	afterRe    = regexp.MustCompile(`(?:past|after)\s+` + clockPattern)
	beforeRe   = regexp.MustCompile(`(?:before|until|by)\s+` + clockPattern)
	maxHoursRe = regexp.MustCompile(`(?:no more than|not more than|at most|maximum of|up to|capped at)\s+(\d+(?:\.\d+)?)\s*hours?`)
)

// Interpret converts free text into a rule. The full input is preserved in
// OriginalText so nothing the lexicons miss is lost to human review.
func (it *Interpreter) Interpret(text string) (model.Rule, error) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return model.Rule{}, &UninterpretableRuleError{Text: text}
	}

	mod := matchModality(lower)
	if mod == nil {
		return model.Rule{}, &UninterpretableRuleError{Text: text}
	}

	qualifiers := map[string]string{}
	priority := mod.priority
	if mod.exclude {
		qualifiers[model.QualifierExclude] = "true"
	}
	if mod.ruleType == model.RulePreference {
		for _, h := range hedgeLexicon {
			if strings.Contains(lower, h.phrase) && h.priority > priority {
				priority = h.priority
			}
		}
	}
	if mod.ruleType == model.RuleRestriction {
		if m := maxHoursRe.FindStringSubmatch(lower); m != nil {
			qualifiers[model.QualifierMaxHours] = m[1]
		}
	}

	rule := model.Rule{
		ID:                uuid.NewString(),
		Type:              mod.ruleType,
		SubjectEmployeeID: it.matchSubject(lower),
		OriginalText:      text,
		Constraints: model.ExtractedConstraints{
			Days:       matchDays(lower),
			Window:     matchWindow(lower),
			Qualifiers: qualifiers,
		},
		Priority: priority,
		Active:   true,
	}
	if err := rule.Validate(); err != nil {
		return model.Rule{}, err
	}
	return rule, nil
}

// matchModality scans the modality lexicon in precedence order. Prohibition
// entries come first, so ambiguous phrasing resolves toward the more
// restrictive interpretation.
func matchModality(lower string) *modalityEntry {
	for i := range modalityLexicon {
		for _, phrase := range modalityLexicon[i].phrases {
			if strings.Contains(lower, phrase) {
				return &modalityLexicon[i]
			}
		}
	}
	return nil
}

func (it *Interpreter) matchSubject(lower string) string {
	for _, entry := range it.names {
		if entry.pattern.MatchString(lower) {
			return entry.employeeID
		}
	}
	return ""
}

func matchDays(lower string) []time.Weekday {
	seen := map[time.Weekday]bool{}
	for phrase, days := range weekdayGroups {
		if containsWord(lower, phrase) {
			for _, d := range days {
				seen[d] = true
			}
		}
	}
	for word, day := range weekdayLexicon {
		if containsWord(lower, word) {
			seen[day] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]time.Weekday, 0, len(seen))
	for d := range seen {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

func containsWord(lower, word string) bool {
	return indexWord(lower, word) >= 0
}

// indexWord returns the byte offset of the first whole-word occurrence of
// word in lower, or -1.
func indexWord(lower, word string) int {
	idx := 0
	for {
		i := strings.Index(lower[idx:], word)
		if i < 0 {
			return -1
		}
		start := idx + i
		end := start + len(word)
		beforeOK := start == 0 || !isWordByte(lower[start-1])
		afterOK := end == len(lower) || !isWordByte(lower[end])
		if beforeOK && afterOK {
			return start
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}

// matchWindow extracts a time window from explicit ranges, open-ended
// phrases, or named periods, in that order of specificity.
func matchWindow(lower string) *model.TimeWindow {
	if m := rangeRe.FindStringSubmatch(lower); m != nil {
		start := clockFrom(m[1], m[2], m[3])
		end := clockFrom(m[4], m[5], m[6])
		if start < end {
			return &model.TimeWindow{Start: start, End: end}
		}
	}
	if m := afterRe.FindStringSubmatch(lower); m != nil {
		return &model.TimeWindow{Start: clockFrom(m[1], m[2], m[3]), End: model.EndOfDay}
	}
	if m := beforeRe.FindStringSubmatch(lower); m != nil {
		end := clockFrom(m[1], m[2], m[3])
		if end > 0 {
			return &model.TimeWindow{Start: 0, End: end}
		}
	}
	earliest := -1
	var window model.TimeWindow
	for _, period := range namedPeriods {
		i := indexWord(lower, period.phrase)
		if i >= 0 && (earliest < 0 || i < earliest) {
			earliest = i
			window = period.window
		}
	}
	if earliest >= 0 {
		return &window
	}
	return nil
}

// clockFrom builds a ClockTime from regexp captures. Hours without an
// am/pm marker are read as 24-hour clock.
func clockFrom(hourStr, minuteStr, meridiem string) model.ClockTime {
	hour := atoi(hourStr)
	minute := atoi(minuteStr)
	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		hour = 23
	}
	if minute > 59 {
		minute = 59
	}
	return model.ClockTime(hour*60 + minute)
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return n
		}
		n = n*10 + int(c-'0')
	}
	return n
}
