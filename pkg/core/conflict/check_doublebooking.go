package conflict

import (
	"fmt"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// checkDoubleBooking finds pairs of assignments for the same employee with
// overlapping windows on the same date. Overlap is half-open: shared
// endpoints (back-to-back shifts) do not conflict.
func checkDoubleBooking(assignments []model.Assignment, roster model.Roster) []model.Conflict {
	var conflicts []model.Conflict

	for employeeID, owned := range counting(assignments) {
		byDate := map[string][]model.Assignment{}
		for _, a := range owned {
			byDate[a.Date] = append(byDate[a.Date], a)
		}

		for date, sameDay := range byDate {
			for i := 0; i < len(sameDay); i++ {
				for j := i + 1; j < len(sameDay); j++ {
					if sameDay[i].ShiftID == sameDay[j].ShiftID {
						continue
					}
					a, okA := roster.ShiftByID(sameDay[i].ShiftID)
					b, okB := roster.ShiftByID(sameDay[j].ShiftID)
					if !okA || !okB {
						continue
					}
					if !a.Window.Overlaps(b.Window) {
						continue
					}
					conflicts = append(conflicts, model.Conflict{
						Kind:       model.ConflictDoubleBooking,
						EmployeeID: employeeID,
						ShiftIDs:   []string{a.ID, b.ID},
						Date:       date,
						Detail: fmt.Sprintf("shifts %s (%s) and %s (%s) overlap",
							a.ID, a.Window, b.ID, b.Window),
					})
				}
			}
		}
	}

	return conflicts
}
