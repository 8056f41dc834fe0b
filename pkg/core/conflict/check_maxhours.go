package conflict

import (
	"fmt"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// checkMaxHours sums assigned shift durations per employee over every
// rolling 7-day window ending on an assignment date and compares against
// the employee's weekly cap. An active restriction rule with an hour
// qualifier lowers the cap when stricter than the employee default.
func checkMaxHours(assignments []model.Assignment, roster model.Roster) []model.Conflict {
	var conflicts []model.Conflict

	for employeeID, owned := range counting(assignments) {
		employee, ok := roster.EmployeeByID(employeeID)
		if !ok {
			continue
		}
		maxHours := effectiveHoursCap(employee, roster)
		if maxHours <= 0 {
			continue
		}

		sorted := chronological(owned, roster)
		for _, anchor := range sorted {
			end, err := model.ParseDate(anchor.Date)
			if err != nil {
				continue
			}
			start := end.AddDate(0, 0, -6)

			total := 0.0
			var contributing []string
			for _, a := range sorted {
				d, err := model.ParseDate(a.Date)
				if err != nil {
					continue
				}
				if d.Before(start) || d.After(end) {
					continue
				}
				shift, ok := roster.ShiftByID(a.ShiftID)
				if !ok {
					continue
				}
				total += shift.DurationHours()
				contributing = append(contributing, shift.ID)
			}

			if total > maxHours {
				conflicts = append(conflicts, model.Conflict{
					Kind:       model.ConflictMaxHoursExceeded,
					EmployeeID: employeeID,
					ShiftIDs:   contributing,
					Date:       anchor.Date,
					Detail: fmt.Sprintf("%.1f assigned hours in the 7 days ending %s exceeds cap of %.1f",
						total, anchor.Date, maxHours),
				})
			}
		}
	}

	return conflicts
}

// effectiveHoursCap is the employee's weekly maximum, tightened by any
// active restriction rule scoped to them. The rule value wins only when
// stricter.
func effectiveHoursCap(employee model.Employee, roster model.Roster) float64 {
	limit := employee.MaxHoursPerWeek
	for _, rule := range roster.ActiveRules(model.RuleRestriction) {
		if rule.SubjectEmployeeID != "" && rule.SubjectEmployeeID != employee.ID {
			continue
		}
		ruleCap, ok := rule.MaxHours()
		if !ok {
			continue
		}
		if limit <= 0 || ruleCap < limit {
			limit = ruleCap
		}
	}
	return limit
}
