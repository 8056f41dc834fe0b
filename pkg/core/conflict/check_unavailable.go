package conflict

import (
	"github.com/camdenward/staffrota/pkg/core/availability"
	"github.com/camdenward/staffrota/pkg/core/model"
)

// checkUnavailable re-resolves availability for every assignment. This
// catches rules added or changed after the assignment was generated, and
// manual edits that ignored the base pattern.
func checkUnavailable(assignments []model.Assignment, roster model.Roster) []model.Conflict {
	var conflicts []model.Conflict

	for _, a := range assignments {
		if !a.Counts() {
			continue
		}
		employee, okE := roster.EmployeeByID(a.EmployeeID)
		shift, okS := roster.ShiftByID(a.ShiftID)
		if !okE || !okS {
			continue
		}

		decision := availability.Resolve(employee, a.Date, shift.Window, roster.Rules)
		if decision.Available {
			continue
		}
		conflicts = append(conflicts, model.Conflict{
			Kind:       model.ConflictUnavailable,
			EmployeeID: a.EmployeeID,
			ShiftIDs:   []string{shift.ID},
			Date:       a.Date,
			Detail:     decision.Reason,
		})
	}

	return conflicts
}
