// Package conflict finds pairwise and aggregate violations in a proposed
// assignment set. The detector only reports; it never removes an
// assignment. Disposition belongs to the workflow layer.
package conflict

import (
	"slices"
	"strings"

	"github.com/camdenward/staffrota/pkg/core/model"
)

// check is one independent violation scan. Every check always runs.
type check func(assignments []model.Assignment, roster model.Roster) []model.Conflict

var checks = []check{
	checkDoubleBooking,
	checkMaxHours,
	checkInsufficientRest,
	checkQualificationMismatch,
	checkUnavailable,
}

// Detect runs every check over the assignment set and returns the combined
// conflicts. The result is order-independent: conflicts are deduplicated by
// (kind, employee, sorted shift ids) and sorted by that key, so re-running
// on the same input yields the same set.
func Detect(assignments []model.Assignment, roster model.Roster) []model.Conflict {
	seen := map[string]bool{}
	var out []model.Conflict
	for _, c := range checks {
		for _, found := range c(assignments, roster) {
			slices.Sort(found.ShiftIDs)
			key := found.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, found)
		}
	}
	slices.SortFunc(out, func(a, b model.Conflict) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return out
}

// HasHard reports whether any conflict in the set blocks validation.
// Every detected kind derives from a hard constraint (availability rules,
// restriction limits, or structural double-booking), so any open conflict
// blocks the validated state. Preference dissatisfaction never reaches the
// detector.
func HasHard(conflicts []model.Conflict) bool {
	return len(conflicts) > 0
}

// counting returns the assignments that occupy employee time, grouped by
// employee. Declined assignments are skipped everywhere.
func counting(assignments []model.Assignment) map[string][]model.Assignment {
	byEmployee := map[string][]model.Assignment{}
	for _, a := range assignments {
		if !a.Counts() {
			continue
		}
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}
	return byEmployee
}

// chronological orders assignments by date, then shift start, then shift id.
func chronological(assignments []model.Assignment, roster model.Roster) []model.Assignment {
	sorted := slices.Clone(assignments)
	slices.SortFunc(sorted, func(a, b model.Assignment) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		sa, _ := roster.ShiftByID(a.ShiftID)
		sb, _ := roster.ShiftByID(b.ShiftID)
		if sa.Window.Start != sb.Window.Start {
			return int(sa.Window.Start - sb.Window.Start)
		}
		return strings.Compare(a.ShiftID, b.ShiftID)
	})
	return sorted
}
