package engine

import (
	"sort"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// preferencePriorityBase converts rule priority (1 highest .. 5 lowest)
// into an additive score so stronger preferences weigh more.
const preferencePriorityBase = 6

// rankCandidates orders the pool in place: fewest assigned hours in the
// 7 days ending on the shift date first (load balancing), then higher
// preference score, then employee id for a stable, deterministic order.
func rankCandidates(pool []model.Employee, shift model.Shift, roster model.Roster, working []model.Assignment) {
	hours := make(map[string]float64, len(pool))
	prefs := make(map[string]int, len(pool))
	for _, employee := range pool {
		hours[employee.ID] = assignedHoursInWeek(employee.ID, shift.Date, roster, working)
		prefs[employee.ID] = preferenceScore(employee, shift, roster)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if hours[a.ID] != hours[b.ID] {
			return hours[a.ID] < hours[b.ID]
		}
		if prefs[a.ID] != prefs[b.ID] {
			return prefs[a.ID] > prefs[b.ID]
		}
		return a.ID < b.ID
	})
}

// assignedHoursInWeek sums the employee's counting shift hours over the
// 7-day window ending on the given date.
func assignedHoursInWeek(employeeID, date string, roster model.Roster, working []model.Assignment) float64 {
	end, err := model.ParseDate(date)
	if err != nil {
		return 0
	}
	start := end.AddDate(0, 0, -6)

	total := 0.0
	for _, a := range working {
		if a.EmployeeID != employeeID || !a.Counts() {
			continue
		}
		d, err := model.ParseDate(a.Date)
		if err != nil {
			continue
		}
		if d.Before(start) || d.After(end) {
			continue
		}
		if shift, ok := roster.ShiftByID(a.ShiftID); ok {
			total += shift.DurationHours()
		}
	}
	return total
}

// preferenceScore sums the weights of active preference and requirement
// rules the assignment would satisfy. Requirement rules carry the highest
// priority from interpretation, so obligated employees surface first among
// equally loaded candidates.
func preferenceScore(employee model.Employee, shift model.Shift, roster model.Roster) int {
	day, err := shift.Weekday()
	if err != nil {
		return 0
	}

	score := 0
	for _, rule := range roster.ActiveRules(model.RulePreference, model.RuleRequirement) {
		if !rule.AppliesTo(employee.ID, day) {
			continue
		}
		if rule.SubjectEmployeeID == "" {
			continue // global soft rules do not differentiate candidates
		}
		if w := rule.Constraints.Window; w != nil && !w.Overlaps(shift.Window) {
			continue
		}
		score += preferencePriorityBase - rule.Priority
	}
	return score
}
