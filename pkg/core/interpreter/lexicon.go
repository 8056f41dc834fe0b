package interpreter

import (
	"time"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// The lexicons below are plain value tables. Adding a phrase pattern means
// adding a row here; the matching logic in interpreter.go never changes.

// modalityEntry maps a set of phrases to a rule type. Entries are scanned
// in table order, so prohibition outranks preference when a sentence could
// read either way: under-constraining risks policy violations.
type modalityEntry struct {
	phrases  []string
	ruleType model.RuleType
	priority int
	exclude  bool
}

var modalityLexicon = []modalityEntry{
	{
		phrases: []string{
			"can't", "cannot", "can not", "never", "not available",
			"is unavailable", "won't", "will not", "is off", "unable to",
		},
		ruleType: model.RuleAvailability,
		priority: 1,
		exclude:  true,
	},
	{
		phrases: []string{
			"no more than", "at most", "maximum of", "a maximum", "up to",
			"not more than", "capped at",
		},
		ruleType: model.RuleRestriction,
		priority: 1,
	},
	{
		phrases: []string{
			"must", "required to", "has to", "have to", "needs to",
			"is required", "always works",
		},
		ruleType: model.RuleRequirement,
		priority: 1,
	},
	{
		phrases: []string{
			"prefers", "prefer", "would like", "would prefer", "likes to",
			"wants to", "would love", "favors", "enjoys",
		},
		ruleType: model.RulePreference,
		priority: 3,
	},
}

// hedgeLexicon softens preference priority. The strongest hedge found wins.
var hedgeLexicon = []struct {
	phrase   string
	priority int
}{
	{"if at all possible", 5},
	{"would be nice", 5},
	{"ideally", 4},
	{"if possible", 4},
	{"when possible", 4},
	{"generally", 4},
}

// namedPeriods maps colloquial day periods to clock windows. A value
// table like the modality lexicon: when a sentence names several periods,
// the one mentioned earliest in the text wins.
var namedPeriods = []struct {
	phrase string
	window model.TimeWindow
}{
	{"morning", model.TimeWindow{Start: 6 * 60, End: 12 * 60}},
	{"mornings", model.TimeWindow{Start: 6 * 60, End: 12 * 60}},
	{"afternoon", model.TimeWindow{Start: 12 * 60, End: 17 * 60}},
	{"afternoons", model.TimeWindow{Start: 12 * 60, End: 17 * 60}},
	{"evening", model.TimeWindow{Start: 17 * 60, End: 22 * 60}},
	{"evenings", model.TimeWindow{Start: 17 * 60, End: 22 * 60}},
}

// weekdayLexicon maps day names and abbreviations to weekdays.
var weekdayLexicon = map[string]time.Weekday{
	"sunday":     time.Sunday,
	"sundays":    time.Sunday,
	"monday":     time.Monday,
	"mondays":    time.Monday,
	"tuesday":    time.Tuesday,
	"tuesdays":   time.Tuesday,
	"wednesday":  time.Wednesday,
	"wednesdays": time.Wednesday,
	"thursday":   time.Thursday,
	"thursdays":  time.Thursday,
	"friday":     time.Friday,
	"fridays":    time.Friday,
	"saturday":   time.Saturday,
	"saturdays":  time.Saturday,
}

// weekdayGroups maps collective day phrases to weekday sets.
var weekdayGroups = map[string][]time.Weekday{
	"weekday":  {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	"weekdays": {time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
	"weekend":  {time.Saturday, time.Sunday},
	"weekends": {time.Saturday, time.Sunday},
}
