package conflict

import (
	"fmt"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// checkInsufficientRest walks each employee's assignments in chronological
// order and flags consecutive shifts on different dates whose gap is
// shorter than the employee's minimum rest hours.
func checkInsufficientRest(assignments []model.Assignment, roster model.Roster) []model.Conflict {
	var conflicts []model.Conflict

	for employeeID, owned := range counting(assignments) {
		employee, ok := roster.EmployeeByID(employeeID)
		if !ok || employee.MinRestHours <= 0 {
			continue
		}

		sorted := chronological(owned, roster)
		for i := 0; i+1 < len(sorted); i++ {
			prev, next := sorted[i], sorted[i+1]
			if prev.Date == next.Date {
				continue // same-day overlap belongs to double_booking
			}
			prevShift, okA := roster.ShiftByID(prev.ShiftID)
			nextShift, okB := roster.ShiftByID(next.ShiftID)
			if !okA || !okB {
				continue
			}
			prevEnd, err := model.DateTime(prev.Date, prevShift.Window.End)
			if err != nil {
				continue
			}
			nextStart, err := model.DateTime(next.Date, nextShift.Window.Start)
			if err != nil {
				continue
			}
			gap := nextStart.Sub(prevEnd).Hours()
			if gap < employee.MinRestHours {
				conflicts = append(conflicts, model.Conflict{
					Kind:       model.ConflictInsufficientRest,
					EmployeeID: employeeID,
					ShiftIDs:   []string{prevShift.ID, nextShift.ID},
					Date:       next.Date,
					Detail: fmt.Sprintf("%.1fh rest between %s and %s, minimum is %.1fh",
						gap, prevShift.ID, nextShift.ID, employee.MinRestHours),
				})
			}
		}
	}

	return conflicts
}
