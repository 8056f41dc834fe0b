package conflict

import (
	"fmt"
	"strings"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// checkQualificationMismatch flags assignments whose shift requires a
// qualification tag the employee does not hold.
func checkQualificationMismatch(assignments []model.Assignment, roster model.Roster) []model.Conflict {
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

		var missing []string
		for _, tag := range shift.RequiredQualifications {
			if !employee.HasQualification(tag) {
				missing = append(missing, tag)
			}
		}
		if len(missing) == 0 {
			continue
		}
		conflicts = append(conflicts, model.Conflict{
			Kind:       model.ConflictQualificationMismatch,
			EmployeeID: a.EmployeeID,
			ShiftIDs:   []string{shift.ID},
			Date:       a.Date,
			Detail: fmt.Sprintf("shift %s requires %s", shift.ID,
				strings.Join(missing, ", ")),
		})
	}

	return conflicts
}
