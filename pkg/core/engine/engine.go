// Package engine searches for a best-effort mapping of employees to shifts
// under the active rule set. A single Generate call is sequential; callers
// may run independent calls for disjoint departments or date ranges in
// parallel.
package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/camdenward/staffrota/pkg/core/availability"
	"github.com/camdenward/staffrota/pkg/core/conflict"
	"github.com/camdenward/staffrota/pkg/core/model"
)

// Request carries the in-memory snapshots for one generation run.
type Request struct {
	// StartDate and EndDate bound the shifts considered (inclusive).
	// Empty bounds include every shift in the snapshot.
	StartDate string
	EndDate   string

	Employees []model.Employee
	Shifts    []model.Shift
	Rules     []model.Rule

	// PriorAssignments seed the run for regeneration and are preserved in
	// the result. Declined assignments free their slots.
	PriorAssignments []model.Assignment

	// CoverageWarningThreshold is a percentage; departments covered below
	// it produce a warning. Zero or negative disables the check.
	CoverageWarningThreshold float64
}

// Generate fills shifts in chronological order. For each shift the
// candidate pool is the set of qualified, available employees whose
// assignment would not introduce a double-booking, hour-cap, or rest
// conflict given the assignments made so far. A shift whose pool is
// smaller than its headcount is recorded as unmet and the run continues;
// partial infeasibility is data, never an error.
//
// Results are deterministic for a fixed input set: shifts are processed in
// (date, start, id) order and candidate ties break on employee id.
func Generate(req Request) (model.GenerationResult, error) {
	for _, rule := range req.Rules {
		if err := rule.Validate(); err != nil {
			return model.GenerationResult{}, &AssignmentEngineError{RuleID: rule.ID, Err: err}
		}
	}

	shifts, err := shiftsInRange(req)
	if err != nil {
		return model.GenerationResult{}, err
	}

	roster := model.Roster{Employees: req.Employees, Shifts: req.Shifts, Rules: req.Rules}
	working := slices.Clone(req.PriorAssignments)
	var unmet []model.Shift

	for _, shift := range shifts {
		needed := shift.Headcount - occupied(working, shift.ID)
		if needed <= 0 {
			continue
		}

		pool := candidatePool(shift, roster, working)
		rankCandidates(pool, shift, roster, working)

		if len(pool) < needed {
			unmet = append(unmet, shift)
		}
		for i := 0; i < needed && i < len(pool); i++ {
			working = append(working, model.Assignment{
				ID:         uuid.NewString(),
				EmployeeID: pool[i].ID,
				ShiftID:    shift.ID,
				Date:       shift.Date,
				Status:     model.AssignmentAssigned,
			})
		}
	}

	// Defensive re-validation over the full resulting set.
	conflicts := conflict.Detect(working, roster)

	result := model.GenerationResult{
		Assignments: working,
		UnmetShifts: unmet,
		Conflicts:   conflicts,
	}
	result.CoveragePercentage = coverage(shifts, working)
	result.Warnings = coverageWarnings(shifts, working, req.CoverageWarningThreshold)
	return result, nil
}

// shiftsInRange filters the snapshot to the requested date range and
// orders it chronologically. A shift with an unparsable date aborts the
// run: a corrupt roster entry must be fixed before any generation can be
// trusted.
func shiftsInRange(req Request) ([]model.Shift, error) {
	var shifts []model.Shift
	for _, s := range req.Shifts {
		if _, err := model.ParseDate(s.Date); err != nil {
			return nil, &AssignmentEngineError{ShiftID: s.ID, Err: err}
		}
		if req.StartDate != "" && s.Date < req.StartDate {
			continue
		}
		if req.EndDate != "" && s.Date > req.EndDate {
			continue
		}
		shifts = append(shifts, s)
	}
	slices.SortFunc(shifts, func(a, b model.Shift) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		if a.Window.Start != b.Window.Start {
			return int(a.Window.Start - b.Window.Start)
		}
		return strings.Compare(a.ID, b.ID)
	})
	return shifts, nil
}

// candidatePool returns the employees eligible for a shift: qualified,
// available, and passing a look-ahead conflict check against the
// assignments made so far in this run.
func candidatePool(shift model.Shift, roster model.Roster, working []model.Assignment) []model.Employee {
	var pool []model.Employee
	for _, employee := range roster.Employees {
		if occupiedBy(working, shift.ID, employee.ID) {
			continue
		}
		if !qualified(employee, shift) {
			continue
		}
		decision := availability.Resolve(employee, shift.Date, shift.Window, roster.Rules)
		if !decision.Available {
			continue
		}
		if introducesConflict(employee, shift, roster, working) {
			continue
		}
		pool = append(pool, employee)
	}
	return pool
}

func qualified(employee model.Employee, shift model.Shift) bool {
	for _, tag := range shift.RequiredQualifications {
		if !employee.HasQualification(tag) {
			return false
		}
	}
	return true
}

// introducesConflict simulates adding the assignment and runs the detector
// over the employee's own assignment set, once without and once with the
// candidate. Only findings absent from the baseline disqualify: a
// pre-existing conflict in a prior assignment must not bar the employee
// from unrelated shifts.
func introducesConflict(employee model.Employee, shift model.Shift, roster model.Roster, working []model.Assignment) bool {
	owned := make([]model.Assignment, 0, 8)
	for _, a := range working {
		if a.EmployeeID == employee.ID && a.Counts() {
			owned = append(owned, a)
		}
	}

	baseline := map[string]bool{}
	for _, c := range conflict.Detect(owned, roster) {
		baseline[c.Key()] = true
	}

	owned = append(owned, model.Assignment{
		ID:         "candidate",
		EmployeeID: employee.ID,
		ShiftID:    shift.ID,
		Date:       shift.Date,
		Status:     model.AssignmentAssigned,
	})
	for _, c := range conflict.Detect(owned, roster) {
		if !baseline[c.Key()] {
			return true
		}
	}
	return false
}

func occupied(working []model.Assignment, shiftID string) int {
	n := 0
	for _, a := range working {
		if a.ShiftID == shiftID && a.Counts() {
			n++
		}
	}
	return n
}

func occupiedBy(working []model.Assignment, shiftID, employeeID string) bool {
	for _, a := range working {
		if a.ShiftID == shiftID && a.EmployeeID == employeeID && a.Counts() {
			return true
		}
	}
	return false
}

// coverage is the percentage of required slots filled. Zero required slots
// count as full coverage.
func coverage(shifts []model.Shift, working []model.Assignment) float64 {
	required, filled := slotCounts(shifts, working)
	if required == 0 {
		return 100
	}
	return float64(filled) / float64(required) * 100
}

func slotCounts(shifts []model.Shift, working []model.Assignment) (required, filled int) {
	for _, shift := range shifts {
		required += shift.Headcount
		n := occupied(working, shift.ID)
		if n > shift.Headcount {
			n = shift.Headcount
		}
		filled += n
	}
	return required, filled
}

// coverageWarnings reports departments whose coverage falls below the
// configured threshold.
func coverageWarnings(shifts []model.Shift, working []model.Assignment, threshold float64) []string {
	if threshold <= 0 {
		return nil
	}
	byDept := map[string][]model.Shift{}
	for _, s := range shifts {
		byDept[s.Department] = append(byDept[s.Department], s)
	}
	departments := make([]string, 0, len(byDept))
	for d := range byDept {
		departments = append(departments, d)
	}
	slices.Sort(departments)

	var warnings []string
	for _, dept := range departments {
		pct := coverage(byDept[dept], working)
		if pct < threshold {
			warnings = append(warnings, fmt.Sprintf(
				"department %s coverage %.1f%% is below threshold %.1f%%", dept, pct, threshold))
		}
	}
	return warnings
}
