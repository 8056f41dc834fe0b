// Package db defines the persisted record shapes for schedules, rules, and
// assignments. The core packages never import this; services convert
// between records and core snapshots.
package db

// ScheduleRecord is a persisted schedule row.
type ScheduleRecord struct {
	ID         string
	Department string
	StartDate  string
	EndDate    string
	Status     string
}

// RuleRecord is a persisted rule row. The time window is stored as minutes
// since midnight; nulls mean the rule covers the whole day.
type RuleRecord struct {
	ID                string
	Type              string
	SubjectEmployeeID string
	OriginalText      string
	Days              []int32
	WindowStart       *int32
	WindowEnd         *int32
	Qualifiers        map[string]string
	Priority          int32
	Active            bool
}

// AssignmentRecord is a persisted assignment row.
type AssignmentRecord struct {
	ID         string
	ScheduleID string
	EmployeeID string
	ShiftID    string
	Date       string
	Status     string
	Priority   int32
	Notes      string
}
