// Package availability answers whether an employee may work a given window.
// Resolution is a pure function over roster snapshots and may run
// concurrently for different employees.
package availability

import (
	"fmt"
	"time"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// Decision is the outcome of an availability check.
type Decision struct {
	Available bool
	Reason    string
}

// Resolve starts from the employee's weekly pattern and applies every
// active availability rule matching the employee and date as an override.
// Rules always win over the base pattern: an exclusion rule overlapping
// the window makes it unavailable, and a grant rule covering the window
// makes it available even outside the base pattern.
//
// Requirement and restriction rules are not evaluated here; they concern
// aggregate limits and gate at the conflict-detection level.
func Resolve(employee model.Employee, date string, window model.TimeWindow, rules []model.Rule) Decision {
	day, err := dayOf(date)
	if err != nil {
		return Decision{Reason: err.Error()}
	}

	for _, rule := range rules {
		if !rule.Active || rule.Type != model.RuleAvailability {
			continue
		}
		if !rule.AppliesTo(employee.ID, day) {
			continue
		}
		ruleWindow := wholeDayIfNil(rule.Constraints.Window)
		if rule.Excludes() {
			if ruleWindow.Overlaps(window) {
				return Decision{Reason: reasonFor(rule)}
			}
			continue
		}
		if ruleWindow.Contains(window) {
			return Decision{Available: true}
		}
	}

	base, ok := employee.WeeklyAvailability[day]
	if !ok {
		return Decision{Reason: fmt.Sprintf("not available on %ss", day)}
	}
	if !base.Contains(window) {
		return Decision{Reason: fmt.Sprintf("outside weekly availability %s", base)}
	}
	return Decision{Available: true}
}

func dayOf(date string) (time.Weekday, error) {
	d, err := model.ParseDate(date)
	if err != nil {
		return 0, err
	}
	return d.Weekday(), nil
}

func wholeDayIfNil(w *model.TimeWindow) model.TimeWindow {
	if w == nil {
		return model.TimeWindow{Start: 0, End: model.EndOfDay}
	}
	return *w
}

func reasonFor(rule model.Rule) string {
	if rule.OriginalText != "" {
		return rule.OriginalText
	}
	return fmt.Sprintf("excluded by availability rule %s", rule.ID)
}
