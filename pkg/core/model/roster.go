package model

// Roster is the in-memory snapshot of everything a generation or detection
// run needs. It is supplied by the caller before invocation and treated as
// immutable for the duration of the run.
type Roster struct {
	Employees []Employee
	Shifts    []Shift
	Rules     []Rule
}

// EmployeeByID looks up an employee in the snapshot.
func (r Roster) EmployeeByID(id string) (Employee, bool) {
	for _, e := range r.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}

// ShiftByID looks up a shift in the snapshot.
func (r Roster) ShiftByID(id string) (Shift, bool) {
	for _, s := range r.Shifts {
		if s.ID == id {
			return s, true
		}
	}
	return Shift{}, false
}

// ActiveRules returns the rules with Active set, optionally filtered by type.
func (r Roster) ActiveRules(types ...RuleType) []Rule {
	var out []Rule
	for _, rule := range r.Rules {
		if !rule.Active {
			continue
		}
		if len(types) == 0 {
			out = append(out, rule)
			continue
		}
		for _, t := range types {
			if rule.Type == t {
				out = append(out, rule)
				break
			}
		}
	}
	return out
}
